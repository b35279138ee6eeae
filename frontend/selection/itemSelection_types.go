package selection

import (
	"turnify/frontend/shared/nav"
	"turnify/infrastructure/catalog"
	"turnify/returns"
	selstate "turnify/returns/selection"
)

// LineView is one catalog occurrence as rendered on the selection page.
type LineView struct {
	Item     returns.CatalogItem
	Index    int
	Key      string
	Selected bool
	Detail   selstate.Detail
	Errored  bool
}

// OrderGroup is one collapsible purchase-order group.
type OrderGroup struct {
	Order       catalog.Order
	Expanded    bool
	AllSelected bool
	Lines       []LineView
}

// ItemSelectionPageData feeds the selection page view.
type ItemSelectionPageData struct {
	Nav           nav.TopNavData
	Query         string
	Groups        []OrderGroup
	SelectedCount int
	Warning       string
	ErrorMessage  string
	Reasons       []string
}
