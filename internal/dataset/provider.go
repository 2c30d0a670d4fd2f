// Package dataset supplies the rows shown by the catalog pages.
package dataset

import (
	"slices"

	"github.com/atomicstack/gridkit/internal/tray"
)

// Provider returns page data. Implementations must return copies callers may keep.
type Provider interface {
	Customers() ([]Customer, error)
	Trays() ([]tray.Tray, error)
}

type static struct {
	customers []Customer
	trays     []tray.Tray
}

func (s static) Customers() ([]Customer, error) {
	return slices.Clone(s.customers), nil
}

func (s static) Trays() ([]tray.Tray, error) {
	out := make([]tray.Tray, len(s.trays))
	for i, t := range s.trays {
		t.Columns = slices.Clone(t.Columns)
		t.Wells = slices.Clone(t.Wells)
		out[i] = t
	}
	return out, nil
}

// Static returns the built-in demo data.
func Static() Provider {
	return static{customers: demoCustomers(), trays: demoTrays()}
}

func demoCustomers() []Customer {
	return []Customer{
		{ID: "1", Name: "Sarah Johnson", Email: "sarah.johnson@techcorp.com", Company: "TechCorp Inc.", Status: "active", Role: "Admin", LastActive: "2024-04-30", CreatedAt: "2024-01-15", Revenue: 125000},
		{ID: "2", Name: "Michael Chen", Email: "michael.chen@startupxyz.com", Company: "StartupXYZ", Status: "active", Role: "User", LastActive: "2024-04-29", CreatedAt: "2024-02-20", Revenue: 89000},
		{ID: "3", Name: "Emily Rodriguez", Email: "emily@designstudio.com", Company: "DesignStudio", Status: "active", Role: "User", LastActive: "2024-04-28", CreatedAt: "2024-03-10", Revenue: 156000},
		{ID: "4", Name: "David Kim", Email: "david.kim@enterprise.com", Company: "Enterprise Solutions", Status: "pending", Role: "Viewer", LastActive: "2024-04-25", CreatedAt: "2024-04-15", Revenue: 0},
		{ID: "5", Name: "Lisa Wong", Email: "lisa.wong@innovate.com", Company: "Innovate Labs", Status: "active", Role: "Admin", LastActive: "2024-04-30", CreatedAt: "2024-01-05", Revenue: 234000},
		{ID: "6", Name: "James Wilson", Email: "james@globaltech.com", Company: "GlobalTech", Status: "inactive", Role: "User", LastActive: "2024-04-15", CreatedAt: "2023-12-01", Revenue: 67000},
		{ID: "7", Name: "Maria Garcia", Email: "maria.garcia@cloudsoft.com", Company: "CloudSoft", Status: "active", Role: "User", LastActive: "2024-04-29", CreatedAt: "2024-02-28", Revenue: 189000},
		{ID: "8", Name: "Robert Taylor", Email: "robert.taylor@datasys.com", Company: "DataSys", Status: "active", Role: "Admin", LastActive: "2024-04-30", CreatedAt: "2024-01-20", Revenue: 312000},
		{ID: "9", Name: "Jennifer Brown", Email: "jennifer@webdev.com", Company: "WebDev Agency", Status: "pending", Role: "Viewer", LastActive: "2024-04-20", CreatedAt: "2024-04-10", Revenue: 0},
		{ID: "10", Name: "Thomas Anderson", Email: "thomas@matrix.com", Company: "Matrix Solutions", Status: "active", Role: "User", LastActive: "2024-04-30", CreatedAt: "2024-03-15", Revenue: 145000},
	}
}

var fiveColumns = []string{"A", "B", "C", "D", "E"}

func demoTrays() []tray.Tray {
	t1 := tray.Grid("tray1", "MLG_TRAY_1", "tray1", fiveColumns, 10)
	t1.Occupy(1, "A", tray.StatusUnassigned, "SAMPLE-A1")
	t1.Occupy(1, "B", tray.StatusUnassigned, "SAMPLE-B1")

	t2 := tray.Grid("tray2", "MLG_TRAY_2", "tray2", fiveColumns, 10)
	t2.Occupy(1, "A", tray.StatusUnassignedUrgent, "SAMPLE-A1")

	t4 := tray.Grid("tray4", "MLG_TRAY_4", "tray4", fiveColumns, 10)
	t4.Occupy(1, "A", tray.StatusUnassigned, "SAMPLE-A1")

	t5 := tray.Grid("tray5", "MLG_TRAY_5", "tray5", []string{"A", "B", "C", "D"}, 12)

	return []tray.Tray{t1, t2, t4, t5}
}
