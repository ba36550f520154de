package field

// Mixed operations with native integers. The integer is reduced into the
// element's field with FromInt before the field operation runs, so both
// operand orders go through the same checked path.

func (e FieldElement) lift(k int64) (FieldElement, error) {
	if e.prime == nil {
		return FieldElement{}, ErrPrimeMismatch
	}
	return FromInt(k, e.prime)
}

// AddInt returns e + k. Addition commutes, so this also serves k + e.
func (e FieldElement) AddInt(k int64) (FieldElement, error) {
	o, err := e.lift(k)
	if err != nil {
		return FieldElement{}, err
	}
	return e.Add(o)
}

// SubInt returns e - k.
func (e FieldElement) SubInt(k int64) (FieldElement, error) {
	o, err := e.lift(k)
	if err != nil {
		return FieldElement{}, err
	}
	return e.Sub(o)
}

// MulInt returns k * e. Multiplication commutes, so this also serves e * k.
func (e FieldElement) MulInt(k int64) (FieldElement, error) {
	o, err := e.lift(k)
	if err != nil {
		return FieldElement{}, err
	}
	return e.Mul(o)
}

// DivInt returns e / k using the modular inverse of k.
func (e FieldElement) DivInt(k int64) (FieldElement, error) {
	o, err := e.lift(k)
	if err != nil {
		return FieldElement{}, err
	}
	return e.Div(o)
}

// IntSub returns k - e.
func IntSub(k int64, e FieldElement) (FieldElement, error) {
	o, err := e.lift(k)
	if err != nil {
		return FieldElement{}, err
	}
	return o.Sub(e)
}

// IntDiv returns k / e.
func IntDiv(k int64, e FieldElement) (FieldElement, error) {
	o, err := e.lift(k)
	if err != nil {
		return FieldElement{}, err
	}
	return o.Div(e)
}
