package todo

// State is the to-do screen's model.
type State struct {
	Items []string
	Text  string
}

// Action describes an intent to change State.
type Action interface {
	isAction()
}

// UpdateText replaces the input text.
type UpdateText struct {
	Text string
}

// AddToDos prepends Items to the list.
type AddToDos struct {
	Items []string
}

// RemoveToDo deletes the item at Index.
type RemoveToDo struct {
	Index int
}

// LoadToDos asks for items to be fetched.
type LoadToDos struct{}

func (UpdateText) isAction() {}
func (AddToDos) isAction()   {}
func (RemoveToDo) isAction() {}
func (LoadToDos) isAction()  {}

// Command names a side effect to run outside Reduce. A nil Command means none.
type Command interface {
	isCommand()
}

// LoadToDosCommand asks the runner to fetch items. Completion turns the
// fetched items into the Action to dispatch next.
type LoadToDosCommand struct {
	Completion func(items []string) Action
}

// SomeOtherCommand is a placeholder runners ignore.
type SomeOtherCommand struct{}

func (LoadToDosCommand) isCommand() {}
func (SomeOtherCommand) isCommand() {}
