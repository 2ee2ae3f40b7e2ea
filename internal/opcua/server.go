package opcua

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/awcullen/opcua/server"
	"github.com/awcullen/opcua/ua"
	"github.com/rs/zerolog/log"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

const (
	pkiDir   = "./pki"
	certFile = "./pki/server.crt"
	keyFile  = "./pki/server.key"

	applicationURI = "urn:depot-fleet-simulator:depot"
)

// NamespaceNodes holds nodes for a specific namespace
type NamespaceNodes struct {
	Namespace  uint16
	FolderName string
	FolderDesc string
	NodeDefs   []core.NodeDefinition // Kept for deferred registration
	VarNodes   map[string]*server.VariableNode
	Values     map[string]interface{}
}

// Server wraps the OPC UA server and manages node values for multiple namespaces.
// Namespaces registered before Start are added to the address space once the
// server is up; until then, and whenever the server cannot be created, values
// are only kept in memory.
type Server struct {
	srv           *server.Server
	port          int
	simulatorName string
	mu            sync.RWMutex

	namespaces map[uint16]*NamespaceNodes
}

// NewServer creates a new OPC UA server
func NewServer(port int, simulatorName string) (*Server, error) {
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid OPC UA port %d", port)
	}
	return &Server{
		port:          port,
		simulatorName: simulatorName,
		namespaces:    make(map[uint16]*NamespaceNodes),
	}, nil
}

// ensurePKI creates PKI directory and self-signed certificates if they don't exist
func ensurePKI(appName string) error {
	if _, err := os.Stat(certFile); err == nil {
		log.Info().Str("certFile", certFile).Msg("Using existing PKI certificates")
		return nil
	}

	log.Info().Msg("Generating self-signed certificates for OPC UA server")

	if err := os.MkdirAll(pkiDir, 0755); err != nil {
		return fmt.Errorf("failed to create PKI directory: %w", err)
	}

	return createSelfSignedCert(appName, certFile, keyFile)
}

// createSelfSignedCert generates a self-signed certificate for OPC UA server
func createSelfSignedCert(appName, certPath, keyPath string) error {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return fmt.Errorf("failed to generate private key: %w", err)
	}

	serialNumber, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return fmt.Errorf("failed to generate serial number: %w", err)
	}

	template := x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			CommonName:   appName,
			Organization: []string{"Depot Fleet Simulator"},
		},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(365 * 24 * time.Hour), // 1 year validity
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
		DNSNames:              []string{"localhost", appName, "depot-fleet-simulator"},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("0.0.0.0")},
	}

	// OPC UA application URI as SAN
	template.URIs = []*url.URL{
		{Scheme: "urn", Opaque: "depot-fleet-simulator:depot"},
	}

	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &privateKey.PublicKey, privateKey)
	if err != nil {
		return fmt.Errorf("failed to create certificate: %w", err)
	}

	certFileHandle, err := os.Create(certPath)
	if err != nil {
		return fmt.Errorf("failed to create cert file: %w", err)
	}
	defer certFileHandle.Close()

	if err := pem.Encode(certFileHandle, &pem.Block{Type: "CERTIFICATE", Bytes: certDER}); err != nil {
		return fmt.Errorf("failed to encode certificate: %w", err)
	}

	keyFileHandle, err := os.OpenFile(keyPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	defer keyFileHandle.Close()

	keyDER := x509.MarshalPKCS1PrivateKey(privateKey)
	if err := pem.Encode(keyFileHandle, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: keyDER}); err != nil {
		return fmt.Errorf("failed to encode private key: %w", err)
	}

	log.Info().
		Str("certPath", certPath).
		Str("keyPath", keyPath).
		Msg("Self-signed certificates generated successfully")

	return nil
}

// Start starts the OPC UA server. Failing to create the server is not fatal:
// the simulator keeps running and node values stay readable in memory.
func (s *Server) Start(ctx context.Context) error {
	endpoint := fmt.Sprintf("opc.tcp://0.0.0.0:%d", s.port)

	log.Info().
		Int("port", s.port).
		Str("endpoint", endpoint).
		Msg("Starting OPC UA server")

	if err := ensurePKI(s.simulatorName); err != nil {
		log.Warn().Err(err).Msg("Failed to create PKI - OPC UA server disabled")
		return nil
	}

	var srv *server.Server
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Warn().
					Interface("panic", r).
					Msg("OPC UA server creation panicked - running in value storage mode only")
			}
		}()

		var err error
		srv, err = server.New(
			ua.ApplicationDescription{
				ApplicationURI:  applicationURI,
				ProductURI:      "urn:depot-fleet-simulator",
				ApplicationName: ua.LocalizedText{Text: "Depot Fleet Simulator", Locale: "en"},
				ApplicationType: ua.ApplicationTypeServer,
			},
			certFile,
			keyFile,
			endpoint,
			server.WithAnonymousIdentity(true),
			server.WithSecurityPolicyNone(true),
			server.WithInsecureSkipVerify(),
		)
		if err != nil {
			log.Warn().
				Err(err).
				Msg("OPC UA server creation failed - running in value storage mode only")
			srv = nil
		}
	}()

	if srv == nil {
		log.Info().Msg("OPC UA server disabled - fleet data is served over HTTP only")
		return nil
	}

	s.mu.Lock()
	s.srv = srv
	s.registerPendingNamespaces()
	s.mu.Unlock()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("OPC UA server panic")
			}
		}()
		if err := srv.ListenAndServe(); err != nil {
			log.Error().Err(err).Msg("OPC UA server error")
		}
	}()

	log.Info().Msg("OPC UA server started successfully")
	return nil
}

// Stop stops the OPC UA server
func (s *Server) Stop(ctx context.Context) error {
	s.mu.RLock()
	srv := s.srv
	s.mu.RUnlock()

	if srv != nil {
		return srv.Close()
	}
	return nil
}

// Running reports whether the OPC UA address space is being served
func (s *Server) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.srv != nil
}

// RegisterNamespace creates a namespace with a root folder and variable nodes.
// Before Start the namespace is stored and added to the address space later.
func (s *Server) RegisterNamespace(nsIndex uint16, folderName, folderDesc string, nodes []core.NodeDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.namespaces[nsIndex]; exists {
		return fmt.Errorf("namespace %d already registered", nsIndex)
	}

	ns := &NamespaceNodes{
		Namespace:  nsIndex,
		FolderName: folderName,
		FolderDesc: folderDesc,
		NodeDefs:   nodes,
		VarNodes:   make(map[string]*server.VariableNode),
		Values:     make(map[string]interface{}),
	}
	for _, nodeDef := range nodes {
		ns.Values[nodeDef.Name] = nodeDef.InitialValue
	}
	s.namespaces[nsIndex] = ns

	if s.srv != nil {
		s.addToAddressSpace(ns)
	}
	return nil
}

// UpdateNamespaceValues updates all values for a namespace
func (s *Server) UpdateNamespaceValues(nsIndex uint16, values map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.namespaces[nsIndex]
	if !ok {
		return
	}

	now := time.Now().UTC()
	for name, value := range values {
		ns.Values[name] = value
		if varNode, ok := ns.VarNodes[name]; ok {
			varNode.SetValue(ua.NewDataValue(value, 0, now, 0, now, 0))
		}
	}
}

// GetNamespaceValue returns a value from a namespace
func (s *Server) GetNamespaceValue(nsIndex uint16, name string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ns, ok := s.namespaces[nsIndex]
	if !ok {
		return nil, false
	}

	value, ok := ns.Values[name]
	return value, ok
}

// registerPendingNamespaces adds namespaces stored before Start. Caller holds mu.
func (s *Server) registerPendingNamespaces() {
	nodeCount := 0
	for _, ns := range s.namespaces {
		s.addToAddressSpace(ns)
		nodeCount += len(ns.NodeDefs)
	}
	log.Info().Int("count", nodeCount).Msg("OPC UA nodes registered in address space")
}

// addToAddressSpace creates the folder and variable nodes of ns. Caller holds mu.
func (s *Server) addToAddressSpace(ns *NamespaceNodes) {
	nm := s.srv.NamespaceManager()
	nsIndex := ns.Namespace

	folder := server.NewObjectNode(
		s.srv,
		ua.NodeIDString{NamespaceIndex: nsIndex, ID: ns.FolderName},
		ua.QualifiedName{NamespaceIndex: nsIndex, Name: ns.FolderName},
		ua.LocalizedText{Text: ns.FolderName},
		ua.LocalizedText{Text: ns.FolderDesc},
		nil,
		[]ua.Reference{
			{
				ReferenceTypeID: ua.ReferenceTypeIDOrganizes,
				IsInverse:       true,
				TargetID:        ua.ExpandedNodeID{NodeID: ua.ObjectIDObjectsFolder},
			},
		},
		0,
	)
	nm.AddNode(folder)

	now := time.Now().UTC()
	for _, nodeDef := range ns.NodeDefs {
		varNode := server.NewVariableNode(
			s.srv,
			ua.NodeIDString{NamespaceIndex: nsIndex, ID: ns.FolderName + "." + nodeDef.Name},
			ua.QualifiedName{NamespaceIndex: nsIndex, Name: nodeDef.Name},
			ua.LocalizedText{Text: nodeDef.DisplayName},
			ua.LocalizedText{Text: nodeDef.Description},
			nil,
			[]ua.Reference{
				{
					ReferenceTypeID: ua.ReferenceTypeIDHasComponent,
					IsInverse:       true,
					TargetID:        ua.ExpandedNodeID{NodeID: ua.NodeIDString{NamespaceIndex: nsIndex, ID: ns.FolderName}},
				},
			},
			ua.NewDataValue(ns.Values[nodeDef.Name], 0, now, 0, now, 0),
			core.OPCUADataType(nodeDef.DataType),
			ua.ValueRankScalar,
			[]uint32{},
			ua.AccessLevelsCurrentRead,
			250.0,
			false,
			nil,
		)
		nm.AddNode(varNode)
		ns.VarNodes[nodeDef.Name] = varNode
	}

	log.Info().
		Uint16("namespace", nsIndex).
		Str("folder", ns.FolderName).
		Int("nodes", len(ns.NodeDefs)).
		Msg("Registered OPC UA namespace")
}
