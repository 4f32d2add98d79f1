// Package ui contains the Bubble Tea program that renders the initiative
// tracker. The Model owns the state machine and the participant registry;
// everything else in the package turns their read-only views into text.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry. Key
//     presses go to the tracker.Machine, which offers them to the active
//     form first and then to the state's transition table.
//   - When the machine reaches a terminal state, Update returns tea.Quit.
//
// Rendering:
//   - The table comes from encounter.Registry.Rows, laid out by the
//     format/table package.
//   - The help box shows State.Help and the form panel shows State.Form.
//     The input box draws a cursor.Model caret at the editor's cursor.
package ui
