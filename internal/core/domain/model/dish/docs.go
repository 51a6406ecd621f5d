// Package dish provides the Dish entity of the menu.
//
// The package includes:
//   - Dish: a menu entry with a name, description, price and image
//   - Rules: the field rules every submitted dish record must satisfy
//   - Patch: a partial update merged over an existing dish
//
// Key business rules:
//   - name, description and image_url are non-empty text
//   - price is an integer greater than 0
//   - the identity is assigned once, by the repository, and never changes
//   - dishes are never removed
package dish
