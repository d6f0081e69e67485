package reports

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"aprendiz/internal/domain/apprentice"
	"aprendiz/internal/domain/employee"
	"aprendiz/internal/domain/stats"
)

type GroupCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// HRSummary aggregates the employee roster. Salary figures only count people
// still on the payroll (no termination date).
type HRSummary struct {
	Headcount     int          `json:"headcount"`
	Active        int          `json:"active"`
	Terminated    int          `json:"terminated"`
	SalaryTotal   float64      `json:"salaryTotal"`
	SalaryAverage float64      `json:"salaryAverage"`
	PayTotal      float64      `json:"payTotal"`
	ByCompany     []GroupCount `json:"byCompany"`
	BySector      []GroupCount `json:"bySector"`
}

type Service struct {
	Apprentices *apprentice.Service
	Employees   *employee.Service
}

func NewService(apprentices *apprentice.Service, employees *employee.Service) *Service {
	return &Service{Apprentices: apprentices, Employees: employees}
}

func (s *Service) ApprenticeSummary(ctx context.Context) (stats.Summary, error) {
	records, err := s.Apprentices.List(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Summarize(records, time.Now()), nil
}

func (s *Service) EmployeeSummary(ctx context.Context) (HRSummary, error) {
	records, err := s.Employees.List(ctx)
	if err != nil {
		return HRSummary{}, err
	}
	return SummarizeEmployees(records), nil
}

// SummarizeEmployees is pure so it can be exercised without a database.
func SummarizeEmployees(records []employee.Employee) HRSummary {
	summary := HRSummary{Headcount: len(records)}

	companies := map[string]int{}
	sectors := map[string]int{}
	for _, record := range records {
		if record.TerminationDate.IsZero() {
			summary.Active++
			summary.SalaryTotal += record.BaseSalary
			summary.PayTotal += record.TotalPay
		} else {
			summary.Terminated++
		}
		if name := strings.TrimSpace(record.Company); name != "" {
			companies[name]++
		}
		if name := strings.TrimSpace(record.Sector); name != "" {
			sectors[name]++
		}
	}

	if summary.Active > 0 {
		summary.SalaryAverage = math.Round(100*summary.SalaryTotal/float64(summary.Active)) / 100
	}
	summary.SalaryTotal = math.Round(100*summary.SalaryTotal) / 100
	summary.PayTotal = math.Round(100*summary.PayTotal) / 100
	summary.ByCompany = sortedCounts(companies)
	summary.BySector = sortedCounts(sectors)
	return summary
}

func sortedCounts(counts map[string]int) []GroupCount {
	result := make([]GroupCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, GroupCount{Name: name, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count == result[j].Count {
			return result[i].Name < result[j].Name
		}
		return result[i].Count > result[j].Count
	})
	return result
}
