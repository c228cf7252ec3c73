package ast

// Comment is a source comment, either attached to a node or held as an
// orphan by the node whose range contains it.
type Comment interface {
	Node

	// Text returns the comment body without its delimiters.
	Text() string

	commentNode()
}

// LineComment is a `//` comment running to the end of the line.
type LineComment struct {
	NodeBase
	Content string
}

// BlockComment is a `/* */` comment.
type BlockComment struct {
	NodeBase
	Content string
}

// JavadocComment is a `/** */` documentation comment.
type JavadocComment struct {
	NodeBase
	Content string
}

func (c *LineComment) Text() string    { return c.Content }
func (c *BlockComment) Text() string   { return c.Content }
func (c *JavadocComment) Text() string { return c.Content }

func (*LineComment) commentNode()    {}
func (*BlockComment) commentNode()   {}
func (*JavadocComment) commentNode() {}

func (*LineComment) Children() []Node    { return nil }
func (*BlockComment) Children() []Node   { return nil }
func (*JavadocComment) Children() []Node { return nil }
