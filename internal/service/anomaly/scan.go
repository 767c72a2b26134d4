package anomaly

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sahakar/accounts-backend/internal/domain"
)

var (
	spikeMultiplier = decimal.NewFromInt(3)
	spikeFloor      = decimal.NewFromInt(1000)
	negativeNetMax  = decimal.NewFromInt(-100)
)

// DayFigures is the subset of a daily record the scanner looks at. Nil
// amounts count as zero.
type DayFigures struct {
	Date         time.Time        `json:"date"`
	TotalIncome  *decimal.Decimal `json:"total_income"`
	TotalExpense *decimal.Decimal `json:"total_expense"`
	ClosingCash  *decimal.Decimal `json:"closing_cash"`
	ClosingUPI   *decimal.Decimal `json:"closing_upi"`
	Status       domain.DayStatus `json:"status"`
}

// FromRecord converts a stored daily record.
func FromRecord(r domain.DailyRecord) DayFigures {
	return DayFigures{
		Date:         r.Date,
		TotalIncome:  &r.TotalIncome,
		TotalExpense: &r.TotalExpense,
		ClosingCash:  &r.ClosingCash,
		ClosingUPI:   &r.ClosingUPI,
		Status:       r.Status,
	}
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// Median sorts a copy of values and returns the element at index n/2, so
// an even count yields the upper-middle value. An empty input yields zero.
func Median(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	return sorted[len(sorted)/2]
}

// Scan flags the records of one outlet-month for review. Findings are in
// discovery order: per-record rules in record order, then one batched
// missing_days finding.
func Scan(month domain.Month, days []DayFigures) domain.ScanResult {
	incomes := make([]decimal.Decimal, len(days))
	for i, d := range days {
		incomes[i] = orZero(d.TotalIncome)
	}
	median := Median(incomes)
	threshold := median.Mul(spikeMultiplier)

	findings := []domain.Finding{}
	present := make(map[int]bool, len(days))

	for _, d := range days {
		date := d.Date
		income := orZero(d.TotalIncome)
		expense := orZero(d.TotalExpense)
		present[d.Date.UTC().Day()] = true

		if income.GreaterThan(threshold) && income.GreaterThan(spikeFloor) {
			value, med := income, median
			findings = append(findings, domain.Finding{
				Type:   domain.AnomalyIncomeSpike,
				Date:   &date,
				Value:  &value,
				Median: &med,
			})
		}

		if net := income.Sub(expense); net.LessThan(negativeNetMax) {
			findings = append(findings, domain.Finding{
				Type:  domain.AnomalyNegativeNet,
				Date:  &date,
				Value: &net,
			})
		}

		if d.Status == domain.DayStatusDraft {
			findings = append(findings, domain.Finding{
				Type: domain.AnomalyUnsubmittedDay,
				Date: &date,
			})
		}

		cash, upi := orZero(d.ClosingCash), orZero(d.ClosingUPI)
		if cash.IsNegative() || upi.IsNegative() {
			value := decimal.Min(cash, upi)
			findings = append(findings, domain.Finding{
				Type:  domain.AnomalyNegativeClosing,
				Date:  &date,
				Value: &value,
			})
		}
	}

	var missing []int
	for day := 1; day <= month.Days(); day++ {
		if !present[day] {
			missing = append(missing, day)
		}
	}
	if len(missing) > 0 {
		findings = append(findings, domain.Finding{
			Type: domain.AnomalyMissingDays,
			Days: missing,
		})
	}

	return domain.ScanResult{
		Anomalies: findings,
		Summary: domain.ScanSummary{
			MedianIncome: median,
			DaysCount:    len(days),
		},
	}
}
