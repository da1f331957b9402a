// Package cli is the PlantPal terminal client.
//
// Every subcommand is a kong command whose Run method receives the App. The
// App wires configuration, the local SQLite store that keeps the session
// token, the REST API client and the dashboard controller. Commands only
// format state: scheduling, filtering and statistics come from the care
// engine through the controller.
//
// Typical flow:
//
//	plantpal signup
//	plantpal plants add --photo monstera.jpg --autofill --location "Living Room"
//	plantpal plants list --filter needs-water
//	plantpal plants water 3f2a
//	plantpal chat
//
// Plant and journal IDs may be abbreviated to any unique prefix.
package cli
