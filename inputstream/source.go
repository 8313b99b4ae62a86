package inputstream

import "io"

// maxEmptyReads bounds how many consecutive (0, nil) results a Read may
// return before the source is treated as broken.
const maxEmptyReads = 100

// source normalizes the io.Reader pull contract: bytes are surfaced
// before a trailing error, io.EOF folds into an exhausted flag, and any
// other failure is sticky. It owns no parsing logic.
type source struct {
	r   io.Reader
	err error // pending or sticky read error, never io.EOF
	eof bool
}

// fill reads into p. It returns (0, nil) only at end of input, with
// exhausted() true from then on. A Read returning bytes alongside an
// error surfaces the bytes now and the error on the next call.
func (s *source) fill(p []byte) (int, error) {
	if s.err != nil {
		err := s.err
		s.eof = true
		return 0, err
	}
	if s.eof {
		return 0, nil
	}
	for i := 0; i < maxEmptyReads; i++ {
		n, err := s.r.Read(p)
		if n < 0 {
			panic("inputstream: reader returned negative count")
		}
		if n > 0 {
			if err == io.EOF {
				s.eof = true
			} else if err != nil {
				s.err = err
			}
			return n, nil
		}
		if err == io.EOF {
			s.eof = true
			return 0, nil
		}
		if err != nil {
			s.eof = true
			s.err = err
			return 0, err
		}
	}
	s.eof = true
	s.err = io.ErrNoProgress
	return 0, io.ErrNoProgress
}

// exhausted reports whether fill can never again produce bytes.
func (s *source) exhausted() bool {
	return s.eof && s.err == nil
}

// failure returns the sticky read error, nil if none occurred.
func (s *source) failure() error {
	return s.err
}
