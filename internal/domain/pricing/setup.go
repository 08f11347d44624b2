package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Propostas-api/pkg/money"
)

// SetupLineItem concepto de cobro único (implantación).
type SetupLineItem struct {
	Key         string          `json:"key"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}

// SetupCost conceptos de implantación y su total.
type SetupCost struct {
	Items []SetupLineItem `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// MigrationCost costo de la migración según su tipo.
func MigrationCost(m MigrationSpec) decimal.Decimal {
	switch m.Kind {
	case MigrationDiscovery:
		billable := max(0, m.Processes-DiscoveryFreeProcesses)
		return PriceDiscoveryProcess.Mul(decimal.NewFromInt(int64(billable)))
	case MigrationPlanilhaCustom, MigrationBackupSistema:
		return PriceConsultingHour.Mul(decimal.NewFromInt(int64(max(0, m.Hours))))
	case MigrationPlanilhaPadrao, MigrationNone, "":
		return decimal.Zero
	}
	return decimal.Zero
}

func migrationItem(m MigrationSpec) (SetupLineItem, bool) {
	item := SetupLineItem{Key: "migration", Value: MigrationCost(m)}
	switch m.Kind {
	case MigrationPlanilhaPadrao:
		item.Label = "Migração - Planilha Padrão"
		item.Description = "Cortesia"
	case MigrationDiscovery:
		if m.Processes <= 0 {
			return item, false
		}
		item.Label = "Migração - Discovery"
		item.Description = fmt.Sprintf("%s processos (cortesia até %s)",
			money.FormatQuantity(m.Processes), money.FormatQuantity(DiscoveryFreeProcesses))
	case MigrationPlanilhaCustom:
		item.Label = "Migração - Planilha Personalizada"
		item.Description = fmt.Sprintf("%d horas", max(0, m.Hours))
	case MigrationBackupSistema:
		item.Label = "Migração - Backup de Sistema"
		item.Description = fmt.Sprintf("%d horas", max(0, m.Hours))
	case MigrationNone, "":
		return item, false
	default:
		return item, false
	}
	return item, true
}

// CalculateSetupCost suma los cobros únicos: starter, migración, entrenamientos y
// boleto (solo Office), horas de consultoría de implantación (Office), horas de
// flujo (CPJ) y servicios extra de tipo SETUP. No incluye la tasa de setup manual.
func CalculateSetupCost(p Product, usage UsageQuantities, m MigrationSpec, addons Addons, extras []ExtraServiceLine) SetupCost {
	usage = usage.Normalize()
	card := RateCardFor(p)
	var items []SetupLineItem

	if addons.Starter {
		items = append(items, SetupLineItem{
			Key: "starter", Label: "Starter Pack", Description: "Implantação acelerada", Value: PriceStarter,
		})
	}
	if it, ok := migrationItem(m); ok {
		items = append(items, it)
	}

	if card.Trainings {
		flags := []struct {
			on    bool
			key   string
			label string
			price decimal.Decimal
		}{
			{addons.TrainingReportPowerBI, "training-powerbi", "Treinamento Gerador de Relatório + Power BI", PriceTrainingReportPowerBI},
			{addons.TrainingDocGenerator, "training-docgen", "Treinamento Gerador de Documentos", PriceTrainingDocGenerator},
			{addons.TrainingControlling, "training-controlling", "Treinamento Controladoria Jurídica", PriceTrainingControlling},
			{addons.TrainingFinance, "training-finance", "Treinamento Financeiro Avançado", PriceTrainingFinance},
			{addons.BankSlipModule, "bank-slip", "Módulo de Boleto Bancário", PriceBankSlipModule},
		}
		for _, f := range flags {
			if f.on {
				items = append(items, SetupLineItem{Key: f.key, Label: f.label, Description: "Pagamento único", Value: f.price})
			}
		}
	}

	if c := flat(usage.ConsultingHours, card.ConsultingSetup); c.Charged() {
		items = append(items, SetupLineItem{
			Key: "consulting-setup", Label: "Consultoria de Implantação",
			Description: fmt.Sprintf("%d horas × %s", c.Quantity, money.FormatBRL(c.UnitPrice)), Value: c.Price,
		})
	}
	if c := flat(usage.FlowHours, card.FlowSetup); c.Charged() {
		items = append(items, SetupLineItem{
			Key: "flow-setup", Label: "Fluxo Completo",
			Description: fmt.Sprintf("%d horas × %s", c.Quantity, money.FormatBRL(c.UnitPrice)), Value: c.Price,
		})
	}

	for _, e := range extras {
		if e.Billing != BillingSetup {
			continue
		}
		items = append(items, SetupLineItem{
			Key: "extra:" + e.ID, Label: e.Description,
			Description: fmt.Sprintf("%s × %s", e.Quantity.String(), money.FormatBRL(e.UnitPrice)), Value: e.Total(),
		})
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Value)
	}
	return SetupCost{Items: items, Total: total}
}
