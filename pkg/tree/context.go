package tree

// Context carries per-build state down the recursion: the owning form, the
// parent component type, the current depth, and the shared error accumulator.
// Child contexts share the accumulator so every error placeholder produced
// anywhere in the tree is visible to the caller afterwards.
type Context struct {
	FormName        string
	ParentComponent string
	Depth           int

	sink *errorSink
}

type errorSink struct {
	errors []*NodeError
}

// NewContext returns a fresh root context for the named form.
func NewContext(formName string) *Context {
	return &Context{FormName: formName, sink: &errorSink{}}
}

// Errors returns every node error recorded during the build, in the order
// the error placeholders were produced.
func (c *Context) Errors() []*NodeError {
	if c == nil || c.sink == nil {
		return nil
	}
	return c.sink.errors
}

func (c *Context) child(parentType string) *Context {
	return &Context{
		FormName:        c.FormName,
		ParentComponent: parentType,
		Depth:           c.Depth + 1,
		sink:            c.sink,
	}
}

func (c *Context) record(err *NodeError) {
	if c == nil || c.sink == nil || err == nil {
		return
	}
	c.sink.errors = append(c.sink.errors, err)
}
