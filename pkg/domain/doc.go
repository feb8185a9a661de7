/*
Package domain contains the core domain models for the finderctl bootstrap engine.

It defines the fundamental entities of the launch pipeline, such as Profiles,
Steps, and the per-invocation Session. This package is kept pure and free of
external dependencies like I/O or process execution, following Hexagonal
Architecture principles.

# Key Entities

  - Profile: A declarative description of a launchable UI variant (command,
    default port, optional system precondition).
  - Step: A single stage of the bootstrap sequence (sysdep, venv, deps, launch).
  - Session: The runtime snapshot of one invocation (work dir, resolved port,
    activated Python environment).
  - ExitError: Carries a child process exit code to the host process boundary.
*/
package domain
