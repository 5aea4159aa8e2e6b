package todo

// Reduce handles all to-do state transitions.
// This is a pure function: it never fetches, renders or touches the input slices.
func Reduce(state State, action Action) (State, Command) {
	var command Command

	switch a := action.(type) {
	case UpdateText:
		state.Text = a.Text

	case AddToDos:
		items := make([]string, 0, len(a.Items)+len(state.Items))
		items = append(items, a.Items...)
		state.Items = append(items, state.Items...)

	case RemoveToDo:
		if a.Index < 0 || a.Index >= len(state.Items) {
			break
		}
		items := make([]string, 0, len(state.Items)-1)
		items = append(items, state.Items[:a.Index]...)
		state.Items = append(items, state.Items[a.Index+1:]...)

	case LoadToDos:
		command = LoadToDosCommand{Completion: addFetched}
	}

	return state, command
}

func addFetched(items []string) Action {
	return AddToDos{Items: items}
}
