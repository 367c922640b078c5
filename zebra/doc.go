// Package zebra encodes the classic five-houses "zebra puzzle"
// (who owns the zebra? who drinks water?) for the lvlogic solver.
//
// What:
//
//   - 125 slots: slot (house, item) means "item belongs to house", for
//     five houses and twenty-five items across five categories
//     (nationality, color, pet, beverage, cigarette brand).
//   - New() assembles the full puzzle: the structural "exactly one item
//     per category per house / exactly one house per item" grid plus the
//     fifteen classic clues, built from Identical, Fixed and
//     ForcedDisjunction constraints.
//   - Render pretty-prints a Solution as the familiar 5×25 grid, and
//     HouseOf answers "which house has this item" for a solved state.
//
// Why:
//
//   - The puzzle is the engine's canonical workout: its clues exercise
//     every rule in the catalog and the known unique solution pins the
//     solver end to end.
//
// The index helpers (IndexOf, Row, Col, Neighbors) are exported so the
// encoding doubles as a worked example of mapping puzzle semantics onto
// flat slot indexes.
package zebra
