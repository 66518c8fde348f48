package backup

import (
	"fmt"
	"os"
)

// Export writes an encrypted copy of the preference database at srcPath to
// dstPath.
func Export(srcPath, dstPath, passphrase string) error {
	plaintext, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read prefs db: %w", err)
	}

	out, err := seal(plaintext, passphrase)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dstPath, out, 0600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// Import decrypts an export at srcPath and writes the recovered preference
// database to dstPath. The wrong passphrase fails without touching dstPath.
func Import(srcPath, dstPath, passphrase string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read export: %w", err)
	}

	plaintext, err := open(data, passphrase)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dstPath, plaintext, 0600); err != nil {
		return fmt.Errorf("write prefs db: %w", err)
	}
	return nil
}
