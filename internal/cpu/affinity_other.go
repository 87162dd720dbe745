//go:build !linux && !windows

package cpu

func pinToCore(int) (int, error) {
	return 0, ErrUnsupported
}
