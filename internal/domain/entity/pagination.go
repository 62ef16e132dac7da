package entity

// Page is a limit/offset window over a list query.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the page to [1, maxLimit], using defaultLimit when no limit was given.
func (p Page) Normalize(defaultLimit, maxLimit int) Page {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	return p
}
