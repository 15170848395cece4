// Package menu provides the catalog read model consumed by the pricing engine.
// Items and modifiers are owned by the catalog collaborator; the ordering core
// only reads them to price order lines and validate customizations.
//
// The package includes:
//   - Item: a catalog item with a per-size price table and eligible modifiers
//   - Modifier: an add-on or removal instruction with an additional price
//   - Size: the named size tiers an item can be priced for
//
// A missing size price is reported, never defaulted to zero.
package menu
