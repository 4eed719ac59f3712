/*
Package domain contains the core domain models for the blocksift engine.

It defines the fundamental entities of a search/replace pass over a block
document, free of I/O or persistence concerns, following Hexagonal
Architecture principles.

# Key Entities

  - Block: One element of the editable document tree (type, attribute map, ordered children).
  - Session: The parameters of a single pass (search text, replacement, case flag, commit flag).
  - Ledger: The pass-scoped accumulator of match count and matched original texts.
  - Report: The caller-facing result of a pass.
  - Notice: The payload emitted after a pass for decoupled display components.
*/
package domain
