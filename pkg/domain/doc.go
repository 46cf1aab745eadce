// Package domain contains the core entities of the gateway tracker:
// projects, their module tree, gateway slots with plan/actual dates, and
// deliverable checklists. It has no dependencies on storage or transport.
package domain
