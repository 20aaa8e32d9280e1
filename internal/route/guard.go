package route

// Decision is the outcome of a guard check.
type Decision struct {
	Allowed  bool
	Redirect Route // destination when denied
}

// Check guards navigation to a route. The listing and detail views
// require an authenticated session; a denied navigation redirects to the
// auth view carrying the originally requested route so the login flow
// can resume it. The check is synchronous against the in-memory flag and
// never touches the network.
func Check(r Route, authenticated bool) Decision {
	if r.Name == NameAuth || authenticated {
		return Decision{Allowed: true}
	}
	return Decision{Redirect: Auth(r.String())}
}
