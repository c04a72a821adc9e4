// Package ui contains the Bubble Tea selection prompt used by every menu.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, input, rendering, and state updates.
//
// Message flow:
//   - Picker.Select wraps the candidates in a Model and runs a Bubble Tea
//     program inline on stderr. Each item keeps its original position as its
//     ID, so the result maps back to the caller's list even when labels repeat.
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, terminal resizes).
//   - Filter/input helpers (internal/ui/input.go) keep all text entry concerns
//     isolated from navigation (internal/ui/navigation.go).
//
// State ownership:
//   - List state lives in internal/ui/state.Level, which tracks items,
//     filtering, the highlighted row, and viewport calculations.
//   - The Model only records the outcome: a chosen position, a cancellation,
//     or an interrupt.
package ui
