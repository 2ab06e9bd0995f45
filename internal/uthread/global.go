package uthread

// Default is the process-wide Runtime instance spec.md §9 asks for:
// "Encapsulate threads[], current, next_tid as a single runtime object with
// one process-wide instance." Package-level functions forward to it so
// callers get the flat global API the spec describes, while Runtime itself
// stays independently constructible for tests that want isolated instances.
var Default = New(DefaultConfig())

// Init resets the default Runtime's thread table and installs the bootstrap
// thread. Call it once, from the goroutine that will act as thread 0.
func Init() { Default.Init() }

// Self returns the calling thread's tid on the default Runtime.
func Self() Tid { return Default.Self() }

// Create installs a new thread on the default Runtime.
func Create(fn StartFunc, arg any) (Tid, error) { return Default.Create(fn, arg) }

// Yield gives up the CPU on the default Runtime.
func Yield() { Default.Yield() }

// Exit terminates the calling thread on the default Runtime. It never
// returns.
func Exit(retval any) { Default.Exit(retval) }

// Join blocks on the default Runtime until tid terminates.
func Join(tid Tid) (any, error) { return Default.Join(tid) }
