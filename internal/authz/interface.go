package authz

// Gate answers whether a caller may perform privileged request transitions.
// The core only consumes the verdict; how the secret is stored or rotated
// is the collaborator's concern.
type Gate interface {
	Authorize(token string) bool
}
