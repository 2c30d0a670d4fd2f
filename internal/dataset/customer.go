package dataset

import (
	"time"

	"github.com/atomicstack/gridkit/internal/datagrid"
	"github.com/atomicstack/gridkit/internal/format/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "2006-01-02"

// Customer is a row of the customer management table.
type Customer struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	Email      string `yaml:"email" json:"email"`
	Company    string `yaml:"company" json:"company"`
	Status     string `yaml:"status" json:"status"`
	Role       string `yaml:"role" json:"role"`
	LastActive string `yaml:"lastActive" json:"lastActive"`
	CreatedAt  string `yaml:"createdAt" json:"createdAt"`
	Revenue    int64  `yaml:"revenue" json:"revenue"`
}

// RowID keys the customer by id.
func (c Customer) RowID() string { return c.ID }

var currency = message.NewPrinter(language.AmericanEnglish)

// FormatRevenue renders whole dollars with thousands separators, e.g. "$125,000".
func FormatRevenue(amount int64) string {
	return currency.Sprintf("$%d", amount)
}

// FormatDate renders an ISO date as M/D/YYYY, passing anything unparsable through.
func FormatDate(value string) string {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return value
	}
	return t.Format("1/2/2006")
}

// CustomerColumns declares the customer table. Name is first so it is the default
// search column.
func CustomerColumns() []datagrid.Column[Customer] {
	return []datagrid.Column[Customer]{
		{Key: "name", Title: "Name", Value: func(c Customer) any { return c.Name }, Sortable: true, Hideable: true},
		{Key: "email", Title: "Email", Value: func(c Customer) any { return c.Email }, Sortable: true, Hideable: true},
		{Key: "company", Title: "Company", Value: func(c Customer) any { return c.Company }, Hideable: true},
		{Key: "status", Title: "Status", Value: func(c Customer) any { return c.Status }, Hideable: true},
		{Key: "role", Title: "Role", Value: func(c Customer) any { return c.Role }, Hideable: true},
		{
			Key:      "revenue",
			Title:    "Revenue",
			Value:    func(c Customer) any { return c.Revenue },
			Format:   func(c Customer) string { return FormatRevenue(c.Revenue) },
			Sortable: true,
			Hideable: true,
			Align:    table.AlignRight,
		},
		{
			Key:      "lastActive",
			Title:    "Last Active",
			Value:    func(c Customer) any { return c.LastActive },
			Format:   func(c Customer) string { return FormatDate(c.LastActive) },
			Sortable: true,
			Hideable: true,
		},
	}
}

// CustomerFilters declares the status and role selects.
func CustomerFilters() []datagrid.FilterSpec {
	return []datagrid.FilterSpec{
		{
			Key:   "status",
			Label: "Status",
			Options: []datagrid.FilterOption{
				{Value: "active", Label: "Active"},
				{Value: "pending", Label: "Pending"},
				{Value: "inactive", Label: "Inactive"},
			},
			Placeholder: "Status",
		},
		{
			Key:   "role",
			Label: "Roles",
			Options: []datagrid.FilterOption{
				{Value: "Admin", Label: "Admin"},
				{Value: "User", Label: "User"},
				{Value: "Viewer", Label: "Viewer"},
			},
			Placeholder: "Role",
		},
	}
}
