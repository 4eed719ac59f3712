/*
Package ports defines the driven ports (interfaces) for the blocksift engine.

These interfaces decouple the core pass logic from external implementations,
allowing the engine to work with various document stores, type registries,
and display channels.

# Key Interfaces

  - BlockStore: Provides the document tree and accepts attribute mutations.
  - TypeSource: Supplies the set of text-capable block types.
  - Notifier: Receives the post-pass notice consumed by display components.
*/
package ports
