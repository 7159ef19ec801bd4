// Package events defines the typed dialogue event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - conversation.*: session lifecycle boundaries.
//   - turn_state.*: resting-state outcomes of one resolved turn.
//
// conversation events
//
//   - ConversationStarted (conversation.started): a session was created.
//   - ConversationEnded (conversation.ended): a session was explicitly
//     completed; emitted once even when ending is requested repeatedly.
//
// turn_state events
//
//   - StateChanged (turn_state.changed): the conversation moved to a new
//     resting state.
//   - ConfirmationRequested (turn_state.confirmation_requested): the turn
//     rests awaiting an explicit yes/no from the user.
//   - ExecutionReady (turn_state.execution_ready): the turn resolved to an
//     executable action; the dispatcher takes over from here.
//   - ConversationInterrupted (turn_state.interrupted): the user aborted, or
//     turn resolution failed and was contained.
package events
