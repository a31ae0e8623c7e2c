// Package dispatcher applies editor commands to the document buffer.
//
// The dispatcher sits between key decoding and the editing core. The input
// layer turns key events into Commands; the dispatcher applies each Command
// to the right buffer for the current Mode and reports the outcome as a
// Result.
//
// # Modes
//
// In ModeEdit commands edit the document. In ModeSavePrompt commands edit a
// one-line prompt buffer holding the file name to save to. Enter confirms
// the name and Esc cancels the prompt.
//
// # Sticky column
//
// The dispatcher owns the sticky column used by vertical movement. It is
// kept across a run of consecutive up/down commands and cleared by every
// other command, so that moving through a short line returns the cursor to
// its original column afterwards.
//
// # Usage
//
//	d := dispatcher.New(buf, "notes.txt")
//	res := d.Dispatch(dispatcher.ModeEdit, dispatcher.Command{Action: dispatcher.ActionInsert, Rune: 'x'})
//	if res.SavePath != "" {
//	    // write the document
//	}
package dispatcher
