// Package commands defines the anylist CLI and wires dependencies for
// subcommands.
//
// # Commands
//
//   - login        Sign in and store the session tokens
//   - logout       Forget the stored session
//   - whoami       Print the signed-in user
//   - lists        Inspect and manage shopping lists
//   - items        Manage items on a list
//   - recipes      Inspect recipes and send them to lists
//   - favourites   Manage starter-list favourites
//   - mealplan     Inspect and edit the meal-plan calendar
//   - icalendar    Control meal-plan calendar sync
//
// # Implementation
//
// The root command resolves configuration and builds a dependency graph
// (token store, HTTP client, client options) before any subcommand runs.
// Session tokens are stored encrypted under the home directory and are
// re-saved after each command in case the engine rotated them.
package commands
