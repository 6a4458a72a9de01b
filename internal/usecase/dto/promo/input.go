package promodto

type CreatePromoInput struct {
	WeekID   string
	Name     string
	Type     string
	RuleJSON []byte
}

type UpdatePromoInput struct {
	PromoID  string
	Name     string
	RuleJSON []byte
}
