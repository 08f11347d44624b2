// Package pdf genera la propuesta comercial imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + consultor  │  N° Propuesta + fechas       │
//	│  CLIENTE: Nombre + documento + contacto                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PLAN: Paquete + precio base + inclusiones                   │
//	│  TABLA MENSUAL: Item | Cant. | Unidad | Mensual | Anual      │
//	│  TABLA SETUP: Item | Descripción | Valor                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: mensual / setup / anual + descuentos + parcelas    │
//	│  CRONOGRAMA: setup + primera mensualidad                     │
//	│  CONDICIONES + OBSERVACIONES                                 │
//	│  FOOTER: QR de contacto del consultor                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propostas-api/internal/application/proposal"
	"github.com/jhoicas/Propostas-api/internal/domain/pricing"
	"github.com/jhoicas/Propostas-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 22, Green: 128, Blue: 61}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa proposal.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ proposal.PDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateQuotePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateQuotePDF(_ context.Context, doc *proposal.QuoteDocument) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: documento vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Proposta Comercial "+doc.Number, true).
		WithAuthor(nonEmpty(doc.Consultant.Name, doc.CompanyName), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(planRows(doc.Pricing)...)

	m.AddRows(sectionTitle("INVESTIMENTO MENSAL"))
	m.AddRows(monthlyHeaderRow())
	m.AddRows(monthlyRows(doc.Pricing.MonthlyItems)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))

	if len(doc.Pricing.SetupItems) > 0 {
		m.AddRows(sectionTitle("IMPLANTAÇÃO"))
		m.AddRows(setupHeaderRow())
		m.AddRows(setupRows(doc.Pricing.SetupItems)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	m.AddRows(sectionTitle("RESUMO"))
	m.AddRows(totalsRows(doc.Pricing)...)
	m.AddRows(scheduleRows(doc.Schedule)...)
	m.AddRows(conditionRows(doc)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + consultor (izq) y número + fechas (der).
func headerRow(doc *proposal.QuoteDocument) core.Row {
	c := doc.Consultant
	return row.New(22).Add(
		col.New(7).Add(
			text.New(nonEmpty(doc.CompanyName, "Proposta Comercial"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Consultor: "+nonEmpty(c.Name, "-"), props.Text{
				Size: 9, Top: 9,
			}),
			text.New(fmt.Sprintf("%s   |   %s", nonEmpty(c.Email, "-"), nonEmpty(c.Phone, "-")), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PROPOSTA COMERCIAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emissão: "+doc.IssuedAt.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
			text.New("Válida até: "+doc.ValidUntil.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 18, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente.
func clientRow(doc *proposal.QuoteDocument) core.Row {
	cl := doc.Form.Client
	return row.New(18).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(cl.Name, "Sem nome"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CNPJ/CPF: %s   |   Contato: %s   |   Cidade: %s",
				nonEmpty(cl.Document, "-"),
				nonEmpty(cl.Contact, "-"),
				nonEmpty(cl.City, "-"),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s",
				nonEmpty(cl.Email, "-"),
				nonEmpty(cl.Phone, "-"),
			), props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
	)
}

// planRows: paquete, precio base e inclusiones.
func planRows(r pricing.PricingResult) []core.Row {
	rows := []core.Row{
		row.New(10).Add(
			col.New(8).Add(text.New(r.PlanName, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
			})),
			col.New(4).Add(text.New(money.FormatBRL(r.BasePrice)+"/mês", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 3,
			})),
		),
	}
	if r.Inclusions == nil {
		return rows
	}
	for _, s := range inclusionLines(r.Inclusions) {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New("• "+s, props.Text{Size: 8, Left: 2, Color: colorGray}),
		)))
	}
	return append(rows, row.New(2))
}

func inclusionLines(in *pricing.InclusionSet) []string {
	lines := []string{
		fmt.Sprintf("%s usuários", money.FormatQuantity(in.Users)),
		fmt.Sprintf("%s publicações", money.FormatQuantity(in.Publications)),
		fmt.Sprintf("%s créditos de monitoramento", money.FormatQuantity(in.Monitoring)),
		fmt.Sprintf("%s documentos IA", money.FormatQuantity(in.Docs)),
	}
	if in.FinanceIncluded {
		fin := "Financeiro incluso"
		if in.FinanceType != "" {
			fin += " (" + in.FinanceType + ")"
		}
		lines = append(lines, fin)
	}
	if in.NFe > 0 {
		lines = append(lines, fmt.Sprintf("NF-e para %d CNPJ", in.NFe))
	}
	if in.StorageGB > 0 {
		lines = append(lines, fmt.Sprintf("%d GB de armazenamento", in.StorageGB))
	}
	if in.AgentTokens > 0 {
		lines = append(lines, fmt.Sprintf("%s tokens de agente", money.FormatQuantity(in.AgentTokens)))
	}
	if in.BankPlan != "" {
		lines = append(lines, fmt.Sprintf("%s com %d boletos", in.BankPlan, in.Boletos))
	}
	if in.UnlimitedProcesses {
		lines = append(lines, "Processos ilimitados")
	}
	return lines
}

func sectionTitle(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(s, props.Text{
		Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3,
	})))
}

func headerCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorGray, Top: 1, Left: 1, Right: 1,
	}))
}

func monthlyHeaderRow() core.Row {
	return row.New(6).Add(
		headerCol("Item", 4, align.Left),
		headerCol("Qtd.", 1, align.Center),
		headerCol("Unidade", 3, align.Left),
		headerCol("Mensal", 2, align.Right),
		headerCol("Anual", 2, align.Right),
	)
}

// monthlyRows: una fila por concepto mensual.
func monthlyRows(items []pricing.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		label := it.Label
		if it.Custom {
			label += " *"
		}
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(label, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(formatQty(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(it.UnitDescription, props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(money.FormatBRL(it.Monthly), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(money.FormatBRL(it.Annual), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func setupHeaderRow() core.Row {
	return row.New(6).Add(
		headerCol("Item", 5, align.Left),
		headerCol("Descrição", 5, align.Left),
		headerCol("Valor", 2, align.Right),
	)
}

func setupRows(items []pricing.SetupLineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		value := money.FormatBRL(it.Value)
		if it.Value.IsZero() {
			value = "Cortesia"
		}
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(it.Label, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(it.Description, props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(value, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRows: bloque de totales alineado a la derecha.
func totalsRows(r pricing.PricingResult) []core.Row {
	var rows []core.Row
	add := func(label string, v decimal.Decimal, grand bool) {
		style, size, color := fontstyle.Normal, 9.0, (*props.Color)(nil)
		if grand {
			style, size, color = fontstyle.Bold, 10, colorPrimary
		}
		rows = append(rows, row.New(5).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: size, Align: align.Right, Right: 2, Color: color})),
			col.New(3).Add(text.New(money.FormatBRL(v), props.Text{Style: style, Size: size, Align: align.Right, Right: 1, Color: color})),
		))
	}
	discount := func(label string, v decimal.Decimal) {
		if !v.IsPositive() {
			return
		}
		rows = append(rows, row.New(5).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{Size: 8, Align: align.Right, Right: 2, Color: colorGreen})),
			col.New(3).Add(text.New("- "+money.FormatBRL(v), props.Text{Size: 8, Align: align.Right, Right: 1, Color: colorGreen})),
		))
	}

	add("Subtotal mensal:", r.MonthlyBase, false)
	discount("Desconto mensal:", r.MonthlyDiscountAmount)
	add("TOTAL MENSAL:", r.MonthlyFinal, true)

	if r.SetupBase.IsPositive() {
		add("Subtotal implantação:", r.SetupBase, false)
		discount("Desconto implantação:", r.SetupDiscountAmount)
		add("TOTAL IMPLANTAÇÃO:", r.SetupFinal, true)
		if r.SetupInstallments.Count > 1 {
			rows = append(rows, noteRow(fmt.Sprintf("Implantação em %dx de %s",
				r.SetupInstallments.Count, money.FormatBRL(r.SetupInstallments.Value))))
		}
	}

	if r.BillingCycle == pricing.CycleAnnual {
		add("Total anual (12 meses):", r.AnnualTotal, false)
		discount("Desconto anual:", r.AnnualDiscountAmount)
		add("TOTAL ANUAL:", r.AnnualFinal, true)
		if r.AnnualInstallments.Count > 1 {
			rows = append(rows, noteRow(fmt.Sprintf("Plano anual em %dx de %s",
				r.AnnualInstallments.Count, money.FormatBRL(r.AnnualInstallments.Value))))
		}
	}
	return rows
}

// scheduleRows: primera factura según las fechas de pago.
func scheduleRows(s pricing.PaymentSchedule) []core.Row {
	if s.SetupDate == nil && s.MonthlyStartDate == nil {
		return nil
	}
	rows := []core.Row{sectionTitle("CRONOGRAMA DE PAGAMENTO")}
	if s.HasSetup && s.SetupDate != nil {
		rows = append(rows, noteRow(fmt.Sprintf("Implantação: %s em %s", money.FormatBRL(s.SetupAmount), formatDate(s.SetupDate))))
	}
	if s.HasMonthly && s.MonthlyStartDate != nil {
		rows = append(rows, noteRow(fmt.Sprintf("Mensalidade: %s a partir de %s", money.FormatBRL(s.MonthlyAmount), formatDate(s.MonthlyStartDate))))
	}
	if s.FirstPeriodIncludesSetup {
		rows = append(rows, noteRow("Primeira fatura (implantação + mensalidade): "+money.FormatBRL(s.FirstPeriodAmount)))
	}
	return rows
}

// conditionRows: condiciones de pago y observaciones en texto libre.
func conditionRows(doc *proposal.QuoteDocument) []core.Row {
	var rows []core.Row
	t := doc.Form.Terms
	if s := strings.TrimSpace(t.PaymentConditions); s != "" {
		rows = append(rows, sectionTitle("CONDIÇÕES DE PAGAMENTO"))
		rows = append(rows, paragraphRows(s)...)
	}
	if s := strings.TrimSpace(t.Observations); s != "" {
		rows = append(rows, sectionTitle("OBSERVAÇÕES"))
		rows = append(rows, paragraphRows(s)...)
	}
	return rows
}

// footerRow: QR con el contacto del consultor + leyenda.
func footerRow(doc *proposal.QuoteDocument) core.Row {
	legend := fmt.Sprintf("Proposta válida até %s. Valores em reais (BRL).", doc.ValidUntil.Format(dateLayout))
	if doc.Consultant.Email == "" {
		return row.New(10).Add(col.New(12).Add(
			text.New(legend, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 2}),
		))
	}
	mailto := "mailto:" + doc.Consultant.Email + "?subject=" + url.PathEscape("Proposta "+doc.Number)
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(mailto, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Fale com seu consultor: escaneie o código.", props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
			text.New(legend, props.Text{
				Size: 7, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func noteRow(s string) core.Row {
	return row.New(5).Add(col.New(12).Add(text.New(s, props.Text{Size: 8, Left: 2, Top: 1})))
}

// paragraphRows una fila por línea del texto libre.
func paragraphRows(s string) []core.Row {
	var rows []core.Row
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			rows = append(rows, noteRow(l))
		}
	}
	return rows
}

func formatQty(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return money.FormatQuantity(int(d.IntPart()))
	}
	return money.FormatNumber(d)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(dateLayout)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
