/*
Package ports defines the driven ports (interfaces) for the finderctl engine.

These interfaces decouple the bootstrap steps from the host system, allowing
process execution to be swapped out in tests without spawning real commands.

# Key Interfaces

  - Executor: Responsible for running and probing host commands (the only
    side-effect channel the steps use).
*/
package ports
