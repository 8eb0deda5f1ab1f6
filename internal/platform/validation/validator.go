package validation

// Validator checks the decoded request params of a route.
//
// ValidateStruct returns the failed fields keyed by their json or query name,
// or nil when the struct is valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
