package cmd

import "time"

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	ExecutionDelayMin time.Duration
	ExecutionDelayMax time.Duration
	RecoveryDisabled  bool
}
