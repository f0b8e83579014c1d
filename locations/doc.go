/*
Package locations implements the cascading ward → area → locality → street
filter over flat master-data records.

Given a Selection of ancestor values, Options computes the distinct values
to offer at the next level, preserving first-seen order for determinism. An
empty filtered set produces an empty option list, never an error.

Selection.Choose sets a level and clears everything below it - changing a
ward always resets area, locality, and street. Selection.Enabled encodes
the disabling rule: a control is usable only when its parent has a value.

Match and Filter apply a selection to records with whitespace-trimmed,
case-insensitive comparison, which is also the contract of the /asset
search endpoint.
*/
package locations
