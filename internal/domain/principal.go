package domain

// PrincipalKind names the table an authenticated actor resolved in.
type PrincipalKind string

const (
	KindClient  PrincipalKind = "client"
	KindStylist PrincipalKind = "stylist"
	KindAdmin   PrincipalKind = "admin"
)

// Principal is the tagged union over the three account tables. It is
// rehydrated from the store on every authenticated request, so a
// deleted account is rejected immediately even with a live token.
type Principal struct {
	ID       int64
	Username string
	Email    string
	Role     string
	Kind     PrincipalKind
}
