package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propostas-api/pkg/money"
)

var twelve = decimal.NewFromInt(12)

// Input estado de la propuesta que alimenta el agregador.
type Input struct {
	Product            Product
	Usage              UsageQuantities
	Addons             Addons
	SetupFee           decimal.Decimal
	MonthlyDiscount    DiscountSpec
	SetupDiscount      DiscountSpec
	AnnualDiscount     DiscountSpec
	Migration          MigrationSpec
	Extras             []ExtraServiceLine
	BillingCycle       BillingCycle
	SetupInstallments  int
	AnnualInstallments int
}

// LineItem concepto mensual de la vista previa.
type LineItem struct {
	Key             string          `json:"key"`
	Label           string          `json:"label"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitDescription string          `json:"unitDescription"`
	Monthly         decimal.Decimal `json:"monthly"`
	Annual          decimal.Decimal `json:"annual"`
	Custom          bool            `json:"custom,omitempty"`
}

// Installments parcelamiento de un total.
type Installments struct {
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

// PricingResult proyección calculada de la propuesta; nunca se guarda.
type PricingResult struct {
	Product     Product             `json:"product"`
	Tier        Tier                `json:"tier"`
	PlanName    string              `json:"planName"`
	BasePrice   decimal.Decimal     `json:"basePrice"`
	Inclusions  *InclusionSet       `json:"inclusions"`
	Exceedances ExceedanceBreakdown `json:"exceedances"`

	MonthlyItems          []LineItem      `json:"monthlyItems"`
	MonthlyBase           decimal.Decimal `json:"monthlyBase"`
	MonthlyDiscountAmount decimal.Decimal `json:"monthlyDiscountAmount"`
	MonthlyFinal          decimal.Decimal `json:"monthlyFinal"`

	SetupItems          []SetupLineItem `json:"setupItems"`
	SetupBase           decimal.Decimal `json:"setupBase"`
	SetupDiscountAmount decimal.Decimal `json:"setupDiscountAmount"`
	SetupFinal          decimal.Decimal `json:"setupFinal"`

	AnnualTotal          decimal.Decimal `json:"annualTotal"`
	AnnualDiscountAmount decimal.Decimal `json:"annualDiscountAmount"`
	AnnualFinal          decimal.Decimal `json:"annualFinal"`

	BillingCycle       BillingCycle `json:"billingCycle"`
	SetupInstallments  Installments `json:"setupInstallments"`
	AnnualInstallments Installments `json:"annualInstallments"`
}

// Price calcula la propuesta con el tier derivado de los usuarios solicitados.
func Price(in Input) PricingResult {
	return BuildPricingResult(SelectTier(in.Product, in.Usage.Users), in)
}

// BuildPricingResult agrega plan, excedentes, implantación y descuentos.
// Función pura: mismas entradas, mismo resultado.
func BuildPricingResult(t Tier, in Input) PricingResult {
	usage := in.Usage.Normalize()
	inclusions := GetInclusions(in.Product, t)
	base := GetBasePrice(in.Product, t)
	exc := CalculateExceedances(in.Product, usage, inclusions, in.Addons)

	r := PricingResult{
		Product:     in.Product,
		Tier:        t,
		PlanName:    PlanName(in.Product, t),
		BasePrice:   base,
		Inclusions:  inclusions,
		Exceedances: exc,
	}

	// ── Mensual ──────────────────────────────────────────────────────────────
	r.MonthlyItems = append(r.MonthlyItems, lineItem("plan", r.PlanName, decimal.NewFromInt(1), "Plano mensal", base))
	r.MonthlyItems = appendFlat(r.MonthlyItems, "users", "Usuários excedentes", "usuário", exc.Users)
	r.MonthlyItems = appendFlat(r.MonthlyItems, "publications", "Publicações excedentes", "publicação", exc.Publications)
	r.MonthlyItems = appendFlat(r.MonthlyItems, "intimations", "Intimações", "intimação", exc.Intimations)
	r.MonthlyItems = appendFlat(r.MonthlyItems, "nfe", "Nota Fiscal Eletrônica", "CNPJ", exc.NFe)
	r.MonthlyItems = appendPackage(r.MonthlyItems, "monitoring", "Monitoramento", exc.Monitoring)
	r.MonthlyItems = appendPackage(r.MonthlyItems, "distribution", "Distribuição", exc.Distribution)
	r.MonthlyItems = appendPackage(r.MonthlyItems, "protocols", "Protocolos", exc.Protocols)
	r.MonthlyItems = appendPackage(r.MonthlyItems, "ai-docs", "Documentos IA", exc.AIDocs)
	if exc.FinanceModule.IsPositive() {
		r.MonthlyItems = append(r.MonthlyItems, lineItem("finance", "Financeiro Avançado", decimal.NewFromInt(1), "Módulo mensal", exc.FinanceModule))
	}
	r.MonthlyItems = appendFlat(r.MonthlyItems, "consulting", "Consultoria Mensal", "hora", exc.Consulting)

	monthlyExtras := decimal.Zero
	for _, e := range in.Extras {
		if e.Billing == BillingSetup {
			continue
		}
		v := e.Total()
		monthlyExtras = monthlyExtras.Add(v)
		r.MonthlyItems = append(r.MonthlyItems, lineItem("extra:"+e.ID, e.Description, e.Quantity,
			money.FormatBRL(e.UnitPrice)+" por unidade", v))
	}

	r.MonthlyBase = base.Add(exc.Total).Add(monthlyExtras)
	r.MonthlyFinal = ApplyDiscount(r.MonthlyBase, in.MonthlyDiscount).Round(2)
	r.MonthlyDiscountAmount = r.MonthlyBase.Sub(r.MonthlyFinal)

	// ── Implantación ─────────────────────────────────────────────────────────
	setupFee := decimal.Max(in.SetupFee, decimal.Zero)
	if setupFee.IsPositive() {
		r.SetupItems = append(r.SetupItems, SetupLineItem{Key: "setup-fee", Label: "Taxa de Setup", Description: "Implantação", Value: setupFee})
	}
	sc := CalculateSetupCost(in.Product, usage, in.Migration, in.Addons, in.Extras)
	r.SetupItems = append(r.SetupItems, sc.Items...)

	r.SetupBase = setupFee.Add(sc.Total)
	r.SetupFinal = ApplyDiscount(r.SetupBase, in.SetupDiscount).Round(2)
	r.SetupDiscountAmount = r.SetupBase.Sub(r.SetupFinal)

	// ── Anual ────────────────────────────────────────────────────────────────
	r.AnnualTotal = r.MonthlyFinal.Mul(twelve)
	r.AnnualFinal = ApplyDiscount(r.AnnualTotal, in.AnnualDiscount).Round(2)
	r.AnnualDiscountAmount = r.AnnualTotal.Sub(r.AnnualFinal)

	r.BillingCycle = in.BillingCycle
	if r.BillingCycle == "" {
		r.BillingCycle = CycleMonthly
	}
	r.SetupInstallments = splitInstallments(r.SetupFinal, in.SetupInstallments)
	r.AnnualInstallments = splitInstallments(r.AnnualFinal, in.AnnualInstallments)
	return r
}

func lineItem(key, label string, qty decimal.Decimal, unit string, monthly decimal.Decimal) LineItem {
	return LineItem{
		Key: key, Label: label, Quantity: qty, UnitDescription: unit,
		Monthly: monthly, Annual: monthly.Mul(twelve),
	}
}

func appendFlat(items []LineItem, key, label, unitName string, c FlatCharge) []LineItem {
	if !c.Charged() {
		return items
	}
	unit := fmt.Sprintf("%s por %s", money.FormatBRL(c.UnitPrice), unitName)
	return append(items, lineItem(key, label, decimal.NewFromInt(int64(c.Quantity)), unit, c.Price))
}

func appendPackage(items []LineItem, key, label string, a PackageAssignment) []LineItem {
	if !a.Charged() {
		return items
	}
	it := lineItem(key, label, decimal.NewFromInt(int64(a.PackageLimit)), a.UnitLabel(), a.Price)
	it.Custom = a.Custom
	return append(items, it)
}

// splitInstallments divide el total en n parcelas redondeadas a centavos (n >= 1).
func splitInstallments(total decimal.Decimal, n int) Installments {
	n = max(1, n)
	return Installments{Count: n, Value: total.Div(decimal.NewFromInt(int64(n))).Round(2)}
}
