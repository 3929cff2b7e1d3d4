/*

Package beacon provides process-wide, leveled, colorized logging with
panic interception.

# Overview

A [Logger] accepts log events described by a [Level], a hierarchical
component target, and a message. Whether an event is emitted is decided
against the Logger's global threshold, unless a per-component override
registered with [Logger.RegisterComponentLevel] matches the event's
component, i.e., the portion of its target before the first "/".

Accepted events render as single colorized lines on stderr:

	2026-08-28 15:55:21 INFO: store/cache - warmed 412 keys

The timestamp, severity tag, and component each carry a fixed color;
the message passes through verbatim. Colors are a capability toggled
with [WithColor] or the BEACON_COLOR environment variable.

# The process-wide Logger

[Init] builds the process-wide Logger exactly once, seeding its threshold
from BEACON_LOG, and installs it as the default log/slog sink through
[Handler]. Only the first Init claims the sink slot; later calls return
[ErrAlreadyInitialized]. The package-level functions ([Info], [SetLevel],
[RegisterComponentLevel], and friends) operate on that Logger and are safe
no-ops before Init.

# Panic interception

[InterceptPanics], deferred at the top of a goroutine, reports a panic
through the Logger before re-raising it: the faulting call site, the
payload re-indented as a pseudo stack trace, and, when BEACON_BACKTRACE
is set, a full runtime backtrace.

*/
package beacon
