package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go"
	"github.com/improbable-eng/grpc-web/go/grpcweb"
	"github.com/ridge/must/v2"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/protein-alphabet/proteintext/grpc"
	proteintextAuth "github.com/protein-alphabet/proteintext/grpc/auth"
	"github.com/protein-alphabet/proteintext/grpc/impl"
	"github.com/protein-alphabet/proteintext/grpc/impl/font"
	"github.com/protein-alphabet/proteintext/grpc/impl/storage"
	"github.com/protein-alphabet/proteintext/pkg/auth"
	"github.com/protein-alphabet/proteintext/pkg/env"
	"github.com/protein-alphabet/proteintext/pkg/glyph"
	yaHttp "github.com/protein-alphabet/proteintext/pkg/http"
)

func main() {
	env.Load()
	ctx := context.Background()

	glyphDir := env.RequiredStringVariable("GLYPH_DIR")
	if bucket := env.StringVariable("GLYPH_BUCKET", ""); bucket != "" {
		storageClient := must.OK1(gcs.NewClient(ctx, storageOptions()...))
		written, err := impl.SyncGlyphs(ctx, storage.New(storageClient), bucket, env.StringVariable("GLYPH_PREFIX", ""), glyphDir, time.Second/2)
		if err != nil {
			log.Fatalf("error syncing glyphs: %v", err)
		}
		storageClient.Close()
		log.Printf("Synced %d glyphs from gs://%s into %s", written, bucket, glyphDir)
	}

	// An inaccessible glyph directory is the only start-up failure; missing letters are skipped at render time.
	glyphs := must.OK1(glyph.NewFromDir(glyphDir))
	fontProvider := must.OK1(font.New(env.StringVariable("FONT_DIR", "")))
	server := impl.New(glyphs, fontProvider)

	var authClient proteintextAuth.Auth
	if projectID := env.StringVariable("FIREBASE_PROJECT_ID", ""); projectID != "" {
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
		if err != nil {
			log.Fatalf("error initializing app: %v", err)
		}
		firebaseClient, err := app.Auth(ctx)
		if err != nil {
			log.Fatalf("error getting Auth client: %v", err)
		}
		authClient = proteintextAuth.New(firebaseClient, env.ListVariable("ALLOWED_EMAIL_DOMAINS"))
	}

	var serverOptions []grpc.ServerOption
	if authClient != nil {
		serverOptions = append(serverOptions, grpc.UnaryInterceptor(bearerInterceptor(authClient)))
	}
	grpcServer := grpc.NewServer(serverOptions...)
	pb.RegisterProteinTextServer(grpcServer, server)

	var download http.Handler = http.HandlerFunc(server.HandleDownload)
	if authClient != nil {
		download = requireBearer(authClient, download)
	}

	go runGrpcServer(grpcServer, env.RequiredIntVariable("GRPC_PORT"))
	runWebServer(grpcServer, download, env.RequiredIntVariable("WEB_PORT"), env.RequiredStringVariable("UI_ORIGIN"))
}

// Honors STORAGE_ENDPOINT, e.g. a local fake-gcs-server.
func storageOptions() []option.ClientOption {
	endpoint := env.StringVariable("STORAGE_ENDPOINT", "")
	if endpoint == "" {
		return nil
	}
	return []option.ClientOption{option.WithEndpoint(endpoint), option.WithoutAuthentication()}
}

func runGrpcServer(grpcServer *grpc.Server, port int) {
	log.Printf("ProteinText gRPC server listening on port %d", port)
	must.OK(grpcServer.Serve(must.OK1(net.Listen("tcp", fmt.Sprintf(":%d", port)))))
}

func runWebServer(grpcServer *grpc.Server, download http.Handler, port int, origin string) {
	grpcwebServer := grpcweb.WrapServer(grpcServer,
		grpcweb.WithOriginFunc(func(requestOrigin string) bool {
			return requestOrigin == origin
		}),
	)

	staticFileDir := env.StringVariable("STATIC_FILE_DIR", "")
	defaultHandler := func(w http.ResponseWriter, r *http.Request) {
		if grpcwebServer.IsGrpcWebRequest(r) || grpcwebServer.IsAcceptableGrpcCorsRequest(r) {
			grpcwebServer.ServeHTTP(w, r)
			return
		}
		if staticFileDir == "" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, staticFileDir+"/index.html")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", defaultHandler)
	mux.Handle("/download", download)
	if staticFileDir != "" {
		mux.HandleFunc("/assets/", yaHttp.HandleFileServer(http.FileServer(http.Dir(staticFileDir))))
	}
	log.Printf("ProteinText web server listening on port %d", port)
	must.OK(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
}

func bearerInterceptor(authClient proteintextAuth.Auth) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, request any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		token, err := auth.TokenFromContext(ctx)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		if _, err := authClient.Verify(ctx, token); err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "invalid token: %v", err)
		}
		return handler(ctx, request)
	}
}

func requireBearer(authClient proteintextAuth.Auth, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.TokenFromRequest(r)
		if err == nil {
			_, err = authClient.Verify(r.Context(), token)
		}
		if err != nil {
			log.Printf("Rejected download: %v", err)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
