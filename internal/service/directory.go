package service

import (
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"inspection-scheduler-backend/internal/config"
	apperrors "inspection-scheduler-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

var directoryAttributes = []string{"displayName", "givenName", "sn", "mail", "mobile", "title"}

// DirectoryUser is the subset of directory attributes used to prefill the user form
type DirectoryUser struct {
	DN          string `json:"dn"`
	DisplayName string `json:"display_name"`
	GivenName   string `json:"given_name"`
	Surname     string `json:"surname"`
	Mail        string `json:"mail"`
	Mobile      string `json:"mobile"`
	Title       string `json:"title"`
}

// ldapClient is the part of *ldap.Conn the directory search needs
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	SetTimeout(d time.Duration)
	Close() error
}

// DirectoryService looks up people in the corporate LDAP directory
type DirectoryService struct {
	cfg  *config.Config
	dial func() (ldapClient, error)
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	s := &DirectoryService{cfg: cfg}
	s.dial = s.dialTLS
	return s
}

func (s *DirectoryService) dialTLS() (ldapClient, error) {
	addr := net.JoinHostPort(s.cfg.LDAPHost, s.cfg.LDAPPort)
	conn, err := ldap.DialURL("ldaps://"+addr, ldap.DialWithTLSConfig(&tls.Config{
		ServerName:         s.cfg.LDAPHost,
		InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify,
	}))
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// SearchByCN returns the people whose common name starts with cn
func (s *DirectoryService) SearchByCN(cn string) ([]DirectoryUser, error) {
	if !s.cfg.DirectoryEnabled() {
		return nil, apperrors.ErrDirectoryNotConfigured
	}

	conn, err := s.dial()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to directory: %w", err)
	}
	defer conn.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		conn.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := conn.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, fmt.Errorf("failed to bind to directory: %w", err)
	}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		50,
		s.cfg.LDAPTimeoutSec,
		false,
		"(&(objectClass=person)(cn="+ldap.EscapeFilter(cn)+"*))",
		directoryAttributes,
		nil,
	)

	res, err := conn.Search(req)
	if err != nil && !ldap.IsErrorWithCode(err, ldap.LDAPResultSizeLimitExceeded) {
		return nil, fmt.Errorf("directory search failed: %w", err)
	}
	if res == nil {
		return []DirectoryUser{}, nil
	}

	out := make([]DirectoryUser, 0, len(res.Entries))
	for _, e := range res.Entries {
		out = append(out, DirectoryUser{
			DN:          e.DN,
			DisplayName: e.GetAttributeValue("displayName"),
			GivenName:   e.GetAttributeValue("givenName"),
			Surname:     e.GetAttributeValue("sn"),
			Mail:        e.GetAttributeValue("mail"),
			Mobile:      e.GetAttributeValue("mobile"),
			Title:       e.GetAttributeValue("title"),
		})
	}
	return out, nil
}
