package console

// Printf writes formatted diagnostic output to the console. It understands
// %d (signed decimal), %x and %p (hex), %s (with a placeholder for a
// missing or non-string value), and %%. An unknown verb is echoed as '%'
// plus the verb so the mistake is visible instead of silently dropped.
//
// This is the kernel-style printer the halt diagnostic relies on, not a
// general fmt replacement; it must work with locking disabled and with no
// allocation-heavy formatting machinery.
func (c *Console) Printf(format string, args ...any) {
	if c.halted.Load() {
		return
	}
	if c.locking.Load() {
		c.mu.Lock()
		defer c.mu.Unlock()
	}
	c.doPrintf(format, args...)
}

func (c *Console) doPrintf(format string, args ...any) {
	ai := 0
	next := func() any {
		if ai < len(args) {
			v := args[ai]
			ai++
			return v
		}
		return nil
	}

	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			c.putc(int(ch))
			continue
		}
		i++
		if i >= len(format) {
			break
		}
		switch verb := format[i]; verb {
		case 'd':
			mag, neg := intArg(next())
			c.printUint(mag, 10, neg)
		case 'x', 'p':
			mag, _ := intArg(next())
			c.printUint(mag, 16, false)
		case 's':
			c.printString(next())
		case '%':
			c.putc('%')
		default:
			c.putc('%')
			c.putc(int(verb))
		}
	}
}

// printString writes a %s argument, falling back to a visible placeholder
// for anything that is not a string.
func (c *Console) printString(v any) {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case []byte:
		s = string(x)
	default:
		s = "(null)"
	}
	for i := 0; i < len(s); i++ {
		c.putc(int(s[i]))
	}
}

// printUint writes a magnitude in the given base, most significant digit
// first, with an optional leading minus.
func (c *Console) printUint(x uint64, base uint64, negative bool) {
	const digits = "0123456789abcdef"

	var buf [21]byte
	i := 0
	for {
		buf[i] = digits[x%base]
		i++
		x /= base
		if x == 0 {
			break
		}
	}
	if negative {
		buf[i] = '-'
		i++
	}
	for i--; i >= 0; i-- {
		c.putc(int(buf[i]))
	}
}

// intArg reduces any integer argument to magnitude and sign. A missing or
// non-integer argument prints as 0.
func intArg(v any) (mag uint64, negative bool) {
	switch n := v.(type) {
	case int:
		return splitSign(int64(n))
	case int8:
		return splitSign(int64(n))
	case int16:
		return splitSign(int64(n))
	case int32:
		return splitSign(int64(n))
	case int64:
		return splitSign(n)
	case uint:
		return uint64(n), false
	case uint8:
		return uint64(n), false
	case uint16:
		return uint64(n), false
	case uint32:
		return uint64(n), false
	case uint64:
		return n, false
	case uintptr:
		return uint64(n), false
	}
	return 0, false
}

func splitSign(n int64) (uint64, bool) {
	if n < 0 {
		return uint64(-n), true
	}
	return uint64(n), false
}
