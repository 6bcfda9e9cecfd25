package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'une entrée de la liste de courses.
// Une entrée est "active" tant qu'elle est en attente ou commandée; une fois
// reçue elle sort de la liste de travail (elle n'est pas supprimée en dur).
const (
	EntryStatusPending  = "pending"
	EntryStatusOrdered  = "ordered"
	EntryStatusReceived = "received"
)

// Priorités d'une entrée de la liste de courses.
const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ShoppingEntry représente une ligne de la liste de courses, liée à un article du stock.
// Invariant: au plus UNE entrée active (pending ou ordered) par article, garanti
// par un index unique partiel côté base, pas par la logique cliente.
type ShoppingEntry struct {
	ID             string
	ItemID         string
	QuantityNeeded decimal.Decimal
	Unit           string
	Priority       string // urgent | high | medium | low
	Status         string // pending | ordered | received
	Notes          string
	AddedAt        time.Time
	UpdatedAt      time.Time
}

// Active indique si l'entrée occupe encore la liste de travail.
func (e *ShoppingEntry) Active() bool {
	return e.Status == EntryStatusPending || e.Status == EntryStatusOrdered
}

// ValidPriority vérifie qu'une priorité est connue.
func ValidPriority(p string) bool {
	return p == PriorityUrgent || p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// ValidEntryStatus vérifie qu'un statut est connu.
func ValidEntryStatus(s string) bool {
	return s == EntryStatusPending || s == EntryStatusOrdered || s == EntryStatusReceived
}
