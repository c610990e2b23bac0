package models

import "fmt"

// Worker is a compute agent that users can be assigned to.
type Worker struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Label renders the worker as one line of a selection list.
func (w Worker) Label() string {
	return fmt.Sprintf("%s - Status: %s (ID: %s)", orNotAvailable(w.Name), orNotAvailable(w.Status), orNotAvailable(w.ID.String()))
}
