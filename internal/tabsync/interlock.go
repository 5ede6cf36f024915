package tabsync

// Latch suppresses an action for as long as it is held. It stays held
// across any number of checks until Release.
type Latch struct {
	held bool
}

func (l *Latch) Hold()      { l.held = true }
func (l *Latch) Release()   { l.held = false }
func (l *Latch) Held() bool { return l.held }

// OneShot suppresses exactly one occurrence of an action. Consume disarms
// it and reports whether it was armed.
type OneShot struct {
	armed bool
}

func (o *OneShot) Arm()        { o.armed = true }
func (o *OneShot) Armed() bool { return o.armed }

func (o *OneShot) Consume() bool {
	armed := o.armed
	o.armed = false
	return armed
}
