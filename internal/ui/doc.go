// Package ui contains the Bubble Tea program behind the item directory and
// the community blog list. Model focuses on message orchestration while
// dedicated helpers own navigation, input, rendering and dropdown menus.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so it is handled by a focused
//     function (navigation for key presses, menus for chosen options).
//   - Navigation helpers (navigation.go) manage cursor movement, screen
//     switches and item selection. Search helpers (input.go) keep text entry
//     isolated from the event loop and push the term into browser.State.
//   - Dropdowns (menus.go, blog.go) subscribe to a uievent.Source. Window
//     resizes and mouse presses outside the open dropdown are published to
//     that source, which dismisses the menu.
//
// State ownership:
//   - List rows and cursors live in internal/ui/state.Level. The search term
//     and its caret live in state.Input.
//   - Filtering, categories and the selected item are owned by
//     internal/browser. Blog read markers are owned by blog.Tracker.
//   - Chosen options run through the internal/ui/command bus. Following a
//     link records the destination, and the caller reads it from
//     Model.NavigatePath once the program exits.
package ui
