package bq2429x

import (
	"errors"

	"github.com/stretchr/testify/mock"
)

var errBus = errors.New("i2c: nack")

// regFile is an in-memory register bank. Writes are echoed back by later
// reads.
type regFile struct {
	regs   Registers
	reads  int
	writes int

	failReadAt  int // register address +1; 0 means never
	failWriteAt int
	err         error
}

func (r *regFile) ReadRegister(reg uint8, buf []byte) error {
	r.reads++
	if r.failReadAt == int(reg)+1 {
		return r.err
	}
	buf[0] = r.regs[reg]
	return nil
}

func (r *regFile) WriteRegister(reg uint8, data []byte) error {
	r.writes++
	if r.failWriteAt == int(reg)+1 {
		return r.err
	}
	r.regs[reg] = data[0]
	return nil
}

// mockTransport records calls for interaction checks.
type mockTransport struct{ mock.Mock }

func (m *mockTransport) ReadRegister(reg uint8, buf []byte) error {
	args := m.Called(reg, buf)
	return args.Error(0)
}

func (m *mockTransport) WriteRegister(reg uint8, data []byte) error {
	args := m.Called(reg, append([]byte(nil), data...))
	return args.Error(0)
}

// onRead stubs a read of reg that returns val.
func (m *mockTransport) onRead(reg, val uint8) *mock.Call {
	return m.On("ReadRegister", reg, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).([]byte)[0] = val }).
		Return(nil)
}
