package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ted/internal/engine/buffer"
)

func cmd(a Action) Command {
	return Command{Action: a}
}

func TestNewWithNilDocument(t *testing.T) {
	d := New(nil, "")
	require.NotNil(t, d.Document())
	assert.Equal(t, 1, d.Document().LineCount())
	assert.Empty(t, d.Path())
}

func TestDispatchEditing(t *testing.T) {
	d := New(buffer.NewBuffer(), "")

	for _, r := range "hi" {
		res := d.Dispatch(ModeEdit, Insert(r))
		assert.True(t, res.Edited)
		assert.Equal(t, ModeEdit, res.Mode)
	}
	d.Dispatch(ModeEdit, cmd(ActionNewline))
	d.Dispatch(ModeEdit, Insert('x'))

	assert.Equal(t, []string{"hi", "x"}, d.Document().Lines())

	res := d.Dispatch(ModeEdit, cmd(ActionBackspace))
	assert.True(t, res.Edited)
	res = d.Dispatch(ModeEdit, cmd(ActionBackspace))
	assert.True(t, res.Edited, "joining lines is an edit")
	assert.Equal(t, []string{"hi"}, d.Document().Lines())
}

func TestDispatchNoOpEditsReportUnchanged(t *testing.T) {
	d := New(buffer.NewBufferFromString("ab"), "")

	res := d.Dispatch(ModeEdit, cmd(ActionBackspace))
	assert.False(t, res.Edited, "backspace at origin changes nothing")

	d.Document().SetCursor(2, 0)
	res = d.Dispatch(ModeEdit, cmd(ActionDelete))
	assert.False(t, res.Edited, "delete at end of buffer changes nothing")

	d.Document().SetCursor(0, 0)
	res = d.Dispatch(ModeEdit, cmd(ActionDelete))
	assert.True(t, res.Edited)
	assert.Equal(t, "b", d.Document().Line(0))
}

func TestDispatchMovesAreNotEdits(t *testing.T) {
	d := New(buffer.NewBufferFromString("abc\ndef"), "")

	for _, a := range []Action{ActionMoveRight, ActionMoveDown, ActionMoveLeft, ActionMoveUp} {
		res := d.Dispatch(ModeEdit, cmd(a))
		assert.False(t, res.Edited, a.String())
	}
	col, row := d.Document().Cursor()
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
}

func TestStickyColumnAcrossVerticalRun(t *testing.T) {
	d := New(buffer.NewBufferFromLines([]string{"hello", "hi", "world"}), "")
	d.Document().SetCursor(5, 0)

	d.Dispatch(ModeEdit, cmd(ActionMoveDown))
	assert.Equal(t, 2, d.Document().CursorCol())
	col, ok := d.StickyColumn()
	assert.True(t, ok)
	assert.Equal(t, 5, col)

	d.Dispatch(ModeEdit, cmd(ActionMoveDown))
	assert.Equal(t, 5, d.Document().CursorCol(), "sticky column restored on a long line")
}

func TestStickyColumnResetByOtherCommands(t *testing.T) {
	d := New(buffer.NewBufferFromLines([]string{"hello", "hi", "world"}), "")
	d.Document().SetCursor(5, 0)

	d.Dispatch(ModeEdit, cmd(ActionMoveDown))
	d.Dispatch(ModeEdit, cmd(ActionMoveLeft))

	_, ok := d.StickyColumn()
	assert.False(t, ok, "horizontal move ends the run")

	d.Dispatch(ModeEdit, cmd(ActionMoveDown))
	assert.Equal(t, 1, d.Document().CursorCol(), "new run starts from the current column")
}

func TestSaveWithPath(t *testing.T) {
	d := New(buffer.NewBuffer(), "notes.txt")

	res := d.Dispatch(ModeEdit, cmd(ActionSave))
	assert.Equal(t, "notes.txt", res.SavePath)
	assert.Equal(t, ModeEdit, res.Mode)
	assert.False(t, res.Edited)
}

func TestSavePromptFlow(t *testing.T) {
	d := New(buffer.NewBufferFromString("body"), "")

	res := d.Dispatch(ModeEdit, cmd(ActionSave))
	require.Equal(t, ModeSavePrompt, res.Mode)
	assert.Empty(t, res.SavePath)

	for _, r := range "out.tx" {
		res = d.Dispatch(ModeSavePrompt, Insert(r))
		assert.Equal(t, ModeSavePrompt, res.Mode)
		assert.False(t, res.Edited, "prompt typing does not edit the document")
	}
	d.Dispatch(ModeSavePrompt, cmd(ActionBackspace))
	d.Dispatch(ModeSavePrompt, Insert('x'))
	d.Dispatch(ModeSavePrompt, Insert('t'))
	assert.Equal(t, "out.txt", d.Prompt().Line(0))

	res = d.Dispatch(ModeSavePrompt, cmd(ActionNewline))
	assert.Equal(t, ModeEdit, res.Mode)
	assert.Equal(t, "out.txt", res.SavePath)
	assert.Equal(t, "body", d.Document().Line(0), "document untouched by prompt")
	assert.Empty(t, d.Path(), "path is recorded by the caller after a successful save")
}

func TestSavePromptStaysOneLine(t *testing.T) {
	d := New(buffer.NewBuffer(), "")
	d.Dispatch(ModeEdit, cmd(ActionSave))

	d.Dispatch(ModeSavePrompt, Insert('a'))
	d.Dispatch(ModeSavePrompt, cmd(ActionMoveUp))
	d.Dispatch(ModeSavePrompt, cmd(ActionMoveRight))
	d.Dispatch(ModeSavePrompt, cmd(ActionMoveLeft))
	d.Dispatch(ModeSavePrompt, cmd(ActionMoveLeft))
	d.Dispatch(ModeSavePrompt, cmd(ActionMoveLeft))
	d.Dispatch(ModeSavePrompt, Insert('b'))

	assert.Equal(t, 1, d.Prompt().LineCount())
	assert.Equal(t, "ba", d.Prompt().Line(0))

	res := d.Dispatch(ModeSavePrompt, Insert('\n'))
	assert.Equal(t, "ba", res.SavePath, "a newline rune confirms")
}

func TestSavePromptCancel(t *testing.T) {
	d := New(buffer.NewBuffer(), "")
	d.Dispatch(ModeEdit, cmd(ActionSave))
	d.Dispatch(ModeSavePrompt, Insert('z'))

	res := d.Dispatch(ModeSavePrompt, cmd(ActionCancel))
	assert.Equal(t, ModeEdit, res.Mode)
	assert.Empty(t, res.SavePath)
	assert.NotEmpty(t, res.Message)

	d.Dispatch(ModeEdit, cmd(ActionSave))
	assert.Equal(t, "", d.Prompt().Line(0), "prompt is reset when reopened")
}

func TestSavePromptEmptyName(t *testing.T) {
	d := New(buffer.NewBuffer(), "")
	d.Dispatch(ModeEdit, cmd(ActionSave))
	d.Dispatch(ModeSavePrompt, Insert(' '))

	res := d.Dispatch(ModeSavePrompt, cmd(ActionSave))
	assert.Equal(t, ModeEdit, res.Mode)
	assert.Empty(t, res.SavePath)
}

func TestQuit(t *testing.T) {
	d := New(buffer.NewBuffer(), "")

	assert.True(t, d.Dispatch(ModeEdit, cmd(ActionQuit)).Quit)
	assert.True(t, d.Dispatch(ModeSavePrompt, cmd(ActionQuit)).Quit)
}

func TestCancelInEditModeIsNoOp(t *testing.T) {
	d := New(buffer.NewBufferFromString("x"), "")

	res := d.Dispatch(ModeEdit, cmd(ActionCancel))
	assert.Equal(t, Result{Mode: ModeEdit}, res)
}

func TestActionStrings(t *testing.T) {
	assert.Equal(t, "move.up", ActionMoveUp.String())
	assert.Equal(t, "action(99)", Action(99).String())
	assert.Equal(t, "insert('a')", Insert('a').String())
	assert.Equal(t, "quit", cmd(ActionQuit).String())
	assert.Equal(t, "EDIT", ModeEdit.String())
	assert.Equal(t, "SAVE", ModeSavePrompt.String())
	assert.True(t, ActionMoveDown.IsVertical())
	assert.False(t, ActionMoveLeft.IsVertical())
}
