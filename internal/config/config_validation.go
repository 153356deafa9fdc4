package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the vault server needs before it starts serving requests.
// The encryption secret and pepper block every vault operation when missing,
// so the server refuses to start without them (fails closed, not open).
//
// The minimum secret length is enforced by the encryption envelope at
// construction time; here only presence is checked.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.EncryptionSecret == "" || cfg.App.PinPepper == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.Token == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
