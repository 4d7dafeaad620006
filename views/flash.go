package views

import (
	"quick-notes/models"
	"strconv"
)

// Flash is a one-shot message shown after a redirect
type Flash struct {
	Message string
	Error   string
}

func noteID(n models.Note) string {
	return strconv.FormatInt(n.ID, 10)
}

func rowID(n models.Note) string {
	return "note-" + noteID(n)
}

func editFormID(n models.Note) string {
	return "edit-" + noteID(n)
}

func noteAction(n models.Note, action string) string {
	return "/notes/" + noteID(n) + "/" + action
}
