package logx

// nop discards everything. Useful as a constructor default when the
// caller passes a nil logger.
type nop struct{}

// Nop returns a Logger that discards all entries.
func Nop() Logger { return nop{} }

func (nop) Debug(string, ...Field) {}
func (nop) Info(string, ...Field)  {}
func (nop) Warn(string, ...Field)  {}
func (nop) Error(string, ...Field) {}
func (nop) With(...Field) Logger   { return nop{} }
func (nop) Sync() error            { return nil }
