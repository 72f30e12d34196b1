package content

import "pagecraft/models"

// OutcomeKind classifies what an action click should do.
type OutcomeKind string

const (
	OutcomeNavigate OutcomeKind = "navigate"
	OutcomePurchase OutcomeKind = "purchase"
	OutcomeNoop     OutcomeKind = "noop"
)

// ActionHandlers declares which commerce callbacks the host application
// supplied. Only their presence matters to resolution.
type ActionHandlers struct {
	HasPurchase  bool
	HasAddToCart bool
}

// ActionOutcome is the resolved result of clicking an action.
type ActionOutcome struct {
	Kind       OutcomeKind             `json:"kind"`
	URL        string                  `json:"url,omitempty"`
	ProductRef string                  `json:"productRef,omitempty"`
	Price      *models.PriceDescriptor `json:"price,omitempty"`
}

// ResolveAction decides between purchase, navigation and no-op for one
// action. The rule is evaluated identically regardless of which block type
// hosts the action: buy + price + purchase handler means purchase, otherwise
// a non-empty URL means navigate, otherwise noop.
//
// productRef identifies the product for purchase outcomes; callers pass the
// hosting block's ID.
func ResolveAction(action models.ActionDescriptor, productRef string, handlers ActionHandlers) ActionOutcome {
	if action.Action == models.ActionBuy && action.Price != nil && handlers.HasPurchase {
		return ActionOutcome{
			Kind:       OutcomePurchase,
			ProductRef: productRef,
			Price:      action.Price,
		}
	}
	if action.URL != "" {
		return ActionOutcome{Kind: OutcomeNavigate, URL: action.URL}
	}
	return ActionOutcome{Kind: OutcomeNoop}
}
