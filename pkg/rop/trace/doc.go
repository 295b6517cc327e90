// Package trace provides ready-made observers for Inspect and InspectErr:
// structured log lines through zap or logrus, and in-memory recorders.
package trace
