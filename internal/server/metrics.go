package server

import (
	"sync/atomic"
	"time"
)

// Metrics tracks server statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal    atomic.Int64
	TodosCreated     atomic.Int64
	TodosUpdated     atomic.Int64
	TodosDeleted     atomic.Int64
	CompleteAllTotal atomic.Int64
	NotFoundTotal    atomic.Int64
	StartTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequestsTotal increments the handled requests counter
func (m *Metrics) IncRequestsTotal() {
	m.RequestsTotal.Add(1)
}

// IncTodosCreated increments the created todos counter
func (m *Metrics) IncTodosCreated() {
	m.TodosCreated.Add(1)
}

// IncTodosUpdated increments the updated todos counter
func (m *Metrics) IncTodosUpdated() {
	m.TodosUpdated.Add(1)
}

// IncTodosDeleted increments the deleted todos counter
func (m *Metrics) IncTodosDeleted() {
	m.TodosDeleted.Add(1)
}

// IncCompleteAll increments the complete-all counter
func (m *Metrics) IncCompleteAll() {
	m.CompleteAllTotal.Add(1)
}

// IncNotFound increments the not-found responses counter
func (m *Metrics) IncNotFound() {
	m.NotFoundTotal.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal    int64     `json:"requests_total"`
	TodosCreated     int64     `json:"todos_created"`
	TodosUpdated     int64     `json:"todos_updated"`
	TodosDeleted     int64     `json:"todos_deleted"`
	CompleteAllTotal int64     `json:"complete_all_total"`
	NotFoundTotal    int64     `json:"not_found_total"`
	TodosCount       int       `json:"todos_count"`
	StartTime        time.Time `json:"start_time"`
	Uptime           string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal:    m.RequestsTotal.Load(),
		TodosCreated:     m.TodosCreated.Load(),
		TodosUpdated:     m.TodosUpdated.Load(),
		TodosDeleted:     m.TodosDeleted.Load(),
		CompleteAllTotal: m.CompleteAllTotal.Load(),
		NotFoundTotal:    m.NotFoundTotal.Load(),
		StartTime:        m.StartTime,
		Uptime:           time.Since(m.StartTime).String(),
	}
}
