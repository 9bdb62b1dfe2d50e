package valz

// Context carries ephemeral per-parse state: the path of the value currently
// being validated and an optional call-scoped error-message override. A fresh
// Context is created for every top-level parse. Nested validators receive
// copies with one more path segment appended, so sibling branches never
// observe each other's path state.
type Context struct {
	path   []any
	errMap ErrorMap
}

// NewContext returns a Context rooted at the empty path.
func NewContext() *Context { return &Context{} }

// Child returns a copy of the context with seg appended to the path. The
// path slice is cloned so siblings do not alias the same backing array.
func (c *Context) Child(seg any) *Context {
	p := make([]any, len(c.path)+1)
	copy(p, c.path)
	p[len(c.path)] = seg
	return &Context{path: p, errMap: c.errMap}
}

// Path returns a copy of the current path segments (empty at the root).
func (c *Context) Path() []any {
	p := make([]any, len(c.path))
	copy(p, c.path)
	return p
}

// NewIssue stamps iss with the current path and resolves its message.
// Precedence: call-scoped override > per-node message > process-wide map >
// built-in default.
func (c *Context) NewIssue(iss Issue, nodeMsg string) Issue {
	iss.Path = c.Path()
	switch {
	case c.errMap != nil:
		iss.Message = c.errMap(iss)
	case nodeMsg != "":
		iss.Message = nodeMsg
	default:
		iss.Message = CurrentErrorMap()(iss)
	}
	return iss
}
