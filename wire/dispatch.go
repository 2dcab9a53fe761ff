package wire

// Send writes m's id byte followed by its encoded body. This is the single
// place the id byte is written; individual message SendOut methods only
// encode their body, matching the source's SerialMessage::sendOut/readIn
// split where the id is handled once by the caller rather than by every
// message type.
func Send(t Transport, m Message) error {
	t.PutByte(byte(m.ID()))
	return m.SendOut(t)
}

// Receive performs one non-blocking probe for an id byte; if one is
// available it is decoded via reg and its body read in. ok is false only
// when no byte was waiting (the common "nothing to do this iteration"
// case); a malformed or unregistered id still yields ok=true with an
// UnknownMsg or DumpByteMsg, per Registry.Create's contract.
func Receive(t Transport, reg *Registry) (msg Message, ok bool, err error) {
	id, ok := t.TryGetID()
	if !ok {
		return nil, false, nil
	}
	msg, err = reg.Create(id)
	if err != nil {
		return nil, true, err
	}
	if err := msg.ReadIn(t); err != nil {
		return nil, true, err
	}
	return msg, true, nil
}
