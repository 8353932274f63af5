// Package domain defines the core business entities of the task board:
// users, tasks, and the validation rules that apply to them. It has no
// dependencies on storage, transport, or presentation concerns.
package domain
