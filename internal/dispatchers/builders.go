package dispatchers

type RootSpec struct {
	Name        string
	Summary     string
	Description string
	Usage       string
	Version     string
	Flags       []FlagDescriptor
}

type CommandSpec struct {
	Name        string
	Parent      *DispatchNode
	Summary     string
	Description string
	Usage       string
	Returns     string
	Example     string
	Flags       []FlagDescriptor
	Args        []string
	Action      CommandFunc
	Category    CommandCategory
}

func Root(spec RootSpec) *DispatchNode {
	node := NewNode(
		spec.Name,
		nil,
		spec.Summary,
		spec.Usage,
		spec.Flags,
		nil,
	)

	node.Description = spec.Description
	node.Version = spec.Version
	return node
}

func Command(spec CommandSpec) *DispatchNode {
	node := NewNode(
		spec.Name,
		spec.Parent,
		spec.Summary,
		spec.Usage,
		spec.Flags,
		spec.Action,
	)

	node.Description = spec.Description
	node.Returns = spec.Returns
	node.Example = spec.Example
	node.Category = spec.Category
	node.Args = spec.Args
	return node
}
