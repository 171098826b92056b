package conf

type Config struct {
	ShowSerial bool
	ShowGPU    bool
}
