// Package services implements the core use cases for Tome.
//
// Services contain the business logic: parsing the summary outline and
// resolving it into a book. They depend only on domain types and driven
// port interfaces, never on concrete adapters.
package services
