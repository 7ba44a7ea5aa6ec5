package cert

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"github.com/bokysan/basexx/internal/args"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/youmark/pkcs8"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const encryptedPKCS8 = "ENCRYPTED PRIVATE KEY"

// Config holds the certificate and the private key of a TLS endpoint. Both can be given inline (PEM) or
// as a file. Relative file names are looked up next to the configuration file first.
type Config struct {
	CaCertificate             string  `long:"ca-certificate"               env:"BASEXX_CA_CERTIFICATE"               yaml:"ca-certificate"               description:"CA certificate(s)"`
	CaCertificateFile         string  `long:"ca-certificate-file"          env:"BASEXX_CA_CERTIFICATE_FILE"          yaml:"ca-certificate-file"          description:"File with CA certificate(s)"`
	Certificate               string  `long:"certificate"                  env:"BASEXX_CERTIFICATE"                  yaml:"certificate"                  description:"Server certificate (PEM). Enables HTTPS."`
	CertificateFile           string  `long:"certificate-file"             env:"BASEXX_CERTIFICATE_FILE"             yaml:"certificate-file"             description:"File with the server certificate. Enables HTTPS."`
	PrivateKey                string  `long:"private-key"                  env:"BASEXX_PRIVATE_KEY"                  yaml:"private-key"                  description:"Private key (PEM)"`
	PrivateKeyFile            string  `long:"private-key-file"             env:"BASEXX_PRIVATE_KEY_FILE"             yaml:"private-key-file"             description:"File with the private key"`
	PrivateKeyPassword        *string `long:"private-key-password"         env:"BASEXX_PRIVATE_KEY_PASSWORD"         yaml:"private-key-password"         description:"Password of an encrypted private key"`
	PrivateKeyPasswordProgram string  `long:"private-key-password-program" env:"BASEXX_PRIVATE_KEY_PASSWORD_PROGRAM" yaml:"private-key-password-program" description:"Program to run to get the private key password"`
}

// ServerConfig adds the server-only options
type ServerConfig struct {
	Config `yaml:",inline"`

	RequireClientCert bool `long:"require-client-cert" env:"BASEXX_REQUIRE_CLIENT_CERT" yaml:"require-client-cert" description:"If set, the client must authenticate with a certificate signed by the CA certificate(s)."`
}

// HasCertificate tells if a certificate was configured, i.e. if the endpoint should use TLS
func (m *Config) HasCertificate() bool {
	return m.Certificate != "" || m.CertificateFile != ""
}

func (m *Config) GetCertificate() ([]byte, error) {
	if m.CertificateFile != "" {
		certPemBlock, err := ioutil.ReadFile(findFile(m.CertificateFile))
		if err != nil {
			return nil, errors.Wrapf(err, "Could not read certificate file: %s", m.CertificateFile)
		}
		return certPemBlock, nil
	} else if m.Certificate != "" {
		return []byte(strings.TrimSpace(m.Certificate)), nil
	}
	return nil, nil
}

// GetPrivateKey returns the private key as an unencrypted PEM block. Encrypted PKCS#8 keys and legacy
// encrypted PEM blocks are decrypted with the configured password.
func (m *Config) GetPrivateKey() ([]byte, error) {
	var privateKeyPemBlock []byte
	if m.PrivateKeyFile != "" {
		data, err := ioutil.ReadFile(findFile(m.PrivateKeyFile))
		if err != nil {
			return nil, errors.Wrapf(err, "Could not read private key file: %s", m.PrivateKeyFile)
		}
		privateKeyPemBlock = data
	} else if m.PrivateKey != "" {
		privateKeyPemBlock = []byte(strings.TrimSpace(m.PrivateKey))
	}

	if len(privateKeyPemBlock) == 0 {
		return nil, nil
	}

	block, _ := pem.Decode(privateKeyPemBlock)
	if block == nil {
		return nil, errors.Errorf("Private key is not PEM encoded")
	}

	if block.Type == encryptedPKCS8 {
		password, err := m.GetPrivateKeyPassword()
		if err != nil {
			return nil, errors.Wrapf(err, "Failed getting the key password")
		}

		key, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, password)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not decrypt private key")
		}

		der, err := x509.MarshalPKCS8PrivateKey(key)
		if err != nil {
			return nil, errors.Wrapf(err, "Don't know how to handle %T", key)
		}
		log.Debugf("Decrypted PKCS#8 private key")
		return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
	}

	if x509.IsEncryptedPEMBlock(block) {
		password, err := m.GetPrivateKeyPassword()
		if err != nil {
			return nil, errors.Wrapf(err, "Failed getting the key password")
		}

		der, err := x509.DecryptPEMBlock(block, password)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not decrypt private key")
		}
		log.Debugf("Decrypted %s", block.Type)
		return pem.EncodeToMemory(&pem.Block{Type: block.Type, Bytes: der}), nil
	}

	return privateKeyPemBlock, nil
}

func (m *Config) GetPrivateKeyPassword() ([]byte, error) {
	if m.PrivateKeyPassword != nil {
		return []byte(*m.PrivateKeyPassword), nil
	} else if m.PrivateKeyPasswordProgram != "" {
		cmd := exec.Command("sh", "-c", m.PrivateKeyPasswordProgram)
		out := bytes.NewBuffer([]byte{})
		cmd.Stdout = out
		if err := cmd.Run(); err != nil {
			return nil, errors.Wrapf(err, "Failed executing %s", m.PrivateKeyPasswordProgram)
		}
		return bytes.TrimSpace(out.Bytes()), nil
	}
	return nil, errors.Errorf("Private key is encrypted and no password or password program defined")
}

// GetX509KeyPair returns nil if neither a certificate nor a key is configured
func (m *Config) GetX509KeyPair() (*tls.Certificate, error) {
	certPemBlock, err := m.GetCertificate()
	if err != nil {
		return nil, err
	}
	privateKeyPemBlock, err := m.GetPrivateKey()
	if err != nil {
		return nil, err
	}

	if len(certPemBlock) == 0 && len(privateKeyPemBlock) == 0 {
		return nil, nil
	}

	cert, err := tls.X509KeyPair(certPemBlock, privateKeyPemBlock)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not create a X509 key pair from given data")
	}
	return &cert, nil
}

func (m *Config) GetCaCertificates() ([]byte, error) {
	if m.CaCertificateFile != "" {
		certPemBlock, err := ioutil.ReadFile(findFile(m.CaCertificateFile))
		if err != nil {
			return nil, errors.Wrapf(err, "Could not read ca certificate file: %s", m.CaCertificateFile)
		}
		return certPemBlock, nil
	} else if m.CaCertificate != "" {
		return []byte(strings.TrimSpace(m.CaCertificate)), nil
	}
	return nil, nil
}

func (m *Config) addCaCertificates(config *tls.Config) error {
	caCert, err := m.GetCaCertificates()
	if err != nil {
		return errors.Wrapf(err, "Could not load CA certificates")
	}

	if caCert != nil {
		caCertPool := x509.NewCertPool()
		if ok := caCertPool.AppendCertsFromPEM(caCert); !ok {
			return errors.Errorf("Could not parse CA certificates")
		}

		config.ClientCAs = caCertPool
		config.RootCAs = caCertPool
	}

	return nil
}

func (m *Config) GetTlsConfig() (*tls.Config, error) {
	conf := &tls.Config{}

	if crt, err := m.GetX509KeyPair(); err != nil {
		return nil, errors.Wrapf(err, "Could not read certificate pair")
	} else if crt != nil {
		conf.Certificates = []tls.Certificate{*crt}
	}
	if err := m.addCaCertificates(conf); err != nil {
		return nil, err
	}

	return conf, nil
}

func (m *ServerConfig) GetTlsConfig() (*tls.Config, error) {
	log.Debugf("ServerConfig.GetTlsConfig(), RequireClientCert=%v", m.RequireClientCert)

	conf, err := m.Config.GetTlsConfig()
	if err != nil {
		return nil, err
	}
	if len(conf.Certificates) == 0 {
		return nil, errors.Errorf("A server certificate and private key are required for TLS")
	}
	if m.RequireClientCert {
		if conf.ClientCAs == nil {
			return nil, errors.Errorf("Client certificates can only be verified when CA certificates are set")
		}
		conf.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return conf, nil
}

// findFile looks for the file relative to the configuration file and, failing that, returns the name as is
func findFile(name string) string {
	if args.General.ConfigurationFilePath != "" && !filepath.IsAbs(name) {
		file := filepath.Join(filepath.Dir(args.General.ConfigurationFilePath), name)

		if _, err := os.Stat(file); err == nil {
			return file
		}
	}

	return name
}
